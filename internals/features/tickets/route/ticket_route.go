package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/tickets/controller"
)

func TicketRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTicketController(db)

	tickets := api.Group("/tickets")
	tickets.Get("/", ctrl.List)
	tickets.Post("/", ctrl.Create)
	tickets.Patch("/:id/status", ctrl.UpdateStatus)
	tickets.Delete("/:id", ctrl.Delete)
}
