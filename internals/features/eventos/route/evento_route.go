package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/eventos/controller"
)

func EventoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventoController(db)

	eventos := api.Group("/eventos")
	eventos.Get("/", ctrl.List)
	eventos.Post("/", ctrl.Create)
	eventos.Put("/:id", ctrl.Update)
	eventos.Delete("/:id", ctrl.Delete)
}
