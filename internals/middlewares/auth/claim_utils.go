package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// split tolerante: espaços duplos e case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}
	exp, ok := expVal.(float64)
	if !ok {
		return fmt.Errorf("invalid exp type")
	}
	if time.Now().Unix() >= int64(exp) {
		return fmt.Errorf("token expired")
	}
	return nil
}

func injectClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["sub"].(string); ok {
		c.Locals("user_id", v)
	} else if v, ok := claims["user_id"].(string); ok {
		c.Locals("user_id", v)
	}
	if v, ok := claims["name"].(string); ok {
		c.Locals("user_name", v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals("role", v)
	}
}
