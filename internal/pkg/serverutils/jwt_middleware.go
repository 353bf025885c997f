package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// ExtractBearer pulls the credential out of an Authorization header value.
// The scheme word is matched case-sensitively; anything else means no
// credential was presented.
func ExtractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}

// VerifyToken checks signature and expiry against the secret and returns the
// principal identifier from the "id" claim.
func VerifyToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthorized
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", ErrUnauthorized
	}
	return id, nil
}

// NewJwtMiddleware guards a route with bearer-token auth. Both a missing
// credential and a failed verification produce the same 401 body, and the
// handler chain is never reached.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr, ok := ExtractBearer(ctx.Get("Authorization"))
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token invalid"})
		}

		principal, err := VerifyToken(tokenStr, secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token invalid"})
		}

		ctx.Locals("user_id", principal)
		return ctx.Next()
	}
}
