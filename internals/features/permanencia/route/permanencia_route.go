package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/permanencia/controller"
)

func PermanenciaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPermanenciaController(db)

	permanencia := api.Group("/permanencia")
	permanencia.Get("/", ctrl.List)
	permanencia.Post("/", ctrl.Create)
	permanencia.Delete("/:id", ctrl.Delete)
}
