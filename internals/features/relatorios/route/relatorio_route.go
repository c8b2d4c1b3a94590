package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/relatorios/controller"
	"esquadrao_backend/internals/middlewares"
)

func RelatorioRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRelatorioController(db)

	relatorios := api.Group("/relatorios")
	relatorios.Get("/chamada", ctrl.Consolidado)
	relatorios.Get("/chamada/pdf", ctrl.PDF)
	relatorios.Get("/chamada/excel", ctrl.Excel)

	// operações caras (PDF + SMTP) têm limiter próprio
	relatorios.Post("/chamada/enviar", middlewares.DispatchRateLimiter(), ctrl.Enviar)
	relatorios.Post("/dispatch", middlewares.DispatchRateLimiter(), ctrl.Dispatch)
}
