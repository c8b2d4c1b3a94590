package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/chaves/controller"
)

func ChaveRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewChaveController(db)

	chaves := api.Group("/chaves")
	chaves.Get("/", ctrl.List)
	chaves.Post("/", ctrl.Checkout)
	chaves.Post("/:id/devolver", ctrl.Return)
}
