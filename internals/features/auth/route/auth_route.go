package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/auth/controller"
	authMiddleware "esquadrao_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, loginLimiter fiber.Handler) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", loginLimiter, ctrl.Login)
	auth.Post("/google", loginLimiter, ctrl.GoogleLogin)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
