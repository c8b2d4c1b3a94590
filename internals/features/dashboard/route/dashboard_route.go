package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dash := api.Group("/dashboard")
	dash.Get("/chamada", ctrl.Chamada)
	dash.Get("/voos", ctrl.Voos)
	dash.Get("/eventos", ctrl.Eventos)
	dash.Get("/justificativas", ctrl.Justificativas)
	dash.Get("/chaves", ctrl.Chaves)
	dash.Get("/notas", ctrl.Notas)
	dash.Get("/permanencia", ctrl.Permanencia)
	dash.Get("/faxina", ctrl.Faxina)
	dash.Get("/tickets", ctrl.Tickets)
}
