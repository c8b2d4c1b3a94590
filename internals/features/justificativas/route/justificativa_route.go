package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/justificativas/controller"
)

func JustificativaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJustificativaController(db)

	justificativas := api.Group("/justificativas")
	justificativas.Get("/", ctrl.List)
	justificativas.Post("/", ctrl.Create)
	justificativas.Put("/:id", ctrl.Update)
	justificativas.Delete("/:id", ctrl.Delete)
}
