package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/faxina/controller"
)

func FaxinaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFaxinaController(db)

	faxina := api.Group("/faxina")
	faxina.Get("/", ctrl.List)
	faxina.Post("/", ctrl.Create)
	faxina.Delete("/:id", ctrl.Delete)
}
