package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "esquadrao_backend/internals/middlewares/logger"
)

// SetupMiddlewares instala a pilha básica na ordem certa:
// recovery primeiro (pega panic de tudo), depois cors, logger e limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
