package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/constants"
	"esquadrao_backend/internals/features/militares/controller"
	authMiddleware "esquadrao_backend/internals/middlewares/auth"
)

func MilitarRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMilitarController(db)

	militares := api.Group("/militares")
	militares.Get("/", ctrl.List)

	// mutações só para administração
	admin := militares.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("o efetivo"),
			constants.AdminOnly,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Patch("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
	admin.Post("/:id/reorder", ctrl.Reorder)
}
