package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "esquadrao_backend/internals/features/auth/route"
	chamadaRoute "esquadrao_backend/internals/features/chamadas/route"
	chaveRoute "esquadrao_backend/internals/features/chaves/route"
	dashboardRoute "esquadrao_backend/internals/features/dashboard/route"
	eventoRoute "esquadrao_backend/internals/features/eventos/route"
	faxinaRoute "esquadrao_backend/internals/features/faxina/route"
	justificativaRoute "esquadrao_backend/internals/features/justificativas/route"
	militarRoute "esquadrao_backend/internals/features/militares/route"
	notaRoute "esquadrao_backend/internals/features/notas/route"
	permanenciaRoute "esquadrao_backend/internals/features/permanencia/route"
	relatorioRoute "esquadrao_backend/internals/features/relatorios/route"
	ticketRoute "esquadrao_backend/internals/features/tickets/route"
	vooRoute "esquadrao_backend/internals/features/voos/route"
	"esquadrao_backend/internals/middlewares"
	authMiddleware "esquadrao_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (público) =====================
	log.Println("[INFO] Registrando rotas de autenticação...")
	authRoute.AuthRoutes(app.Group("/api"), db, middlewares.LoginRateLimiter())

	// ===================== API (protegido) =====================
	api := app.Group("/api", middlewares.DBMiddleware(db), authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Registrando rotas do efetivo...")
	militarRoute.MilitarRoutes(api, db)

	log.Println("[INFO] Registrando rotas de chamada...")
	chamadaRoute.ChamadaRoutes(api, db)
	justificativaRoute.JustificativaRoutes(api, db)
	relatorioRoute.RelatorioRoutes(api, db)

	log.Println("[INFO] Registrando rotas de rotina do esquadrão...")
	vooRoute.VooRoutes(api, db)
	eventoRoute.EventoRoutes(api, db)
	chaveRoute.ChaveRoutes(api, db)
	notaRoute.NotaRoutes(api, db)
	permanenciaRoute.PermanenciaRoutes(api, db)
	faxinaRoute.FaxinaRoutes(api, db)
	ticketRoute.TicketRoutes(api, db)

	log.Println("[INFO] Registrando rotas do dashboard...")
	dashboardRoute.DashboardRoutes(api, db)
}
