package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/chamadas/controller"
)

func ChamadaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChamadaController(db)

	chamadas := api.Group("/chamadas")
	chamadas.Get("/", ctrl.List)
	chamadas.Post("/", ctrl.Create)
}
