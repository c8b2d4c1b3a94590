package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationErrorJSON converte erros do validator.v10 para o envelope 422 padrão.
func ValidationErrorJSON(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := strings.ToLower(fe.Field())
		fields[key] = append(fields[key], fe.Tag())
	}
	return JsonValidationError(c, fields)
}
