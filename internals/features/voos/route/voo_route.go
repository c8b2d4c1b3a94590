package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/voos/controller"
)

func VooRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVooController(db)

	voos := api.Group("/voos")
	voos.Get("/", ctrl.List)
	voos.Post("/", ctrl.Create)
	voos.Put("/:id", ctrl.Update)
	voos.Delete("/:id", ctrl.Delete)
}
