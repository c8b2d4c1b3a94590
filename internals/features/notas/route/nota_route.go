package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/notas/controller"
)

func NotaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotaController(db)

	notas := api.Group("/notas")
	notas.Get("/", ctrl.List)
	notas.Post("/", ctrl.Create)
	notas.Put("/:id", ctrl.Update)
	notas.Delete("/:id", ctrl.Delete)
}
