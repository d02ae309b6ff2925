package middleware

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/pkg/jwt"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewMiddleware().AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id").(uint), "role": c.Locals("role")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "TEST")
	app := newProtectedApp(jwtService)

	token, err := jwtService.GenerateTokenUser(42, domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		UserID uint   `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(42), body.UserID)
	assert.Equal(t, domain.RoleUser, body.Role)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	app := newProtectedApp(jwt.NewJWTService("secret", "TEST"))

	other, err := jwt.NewJWTService("other", "TEST").GenerateTokenUser(1, domain.RoleUser)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"empty bearer": "Bearer ",
		"garbage":      "Bearer not-a-token",
		"wrong secret": "Bearer " + other,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set(fiber.HeaderAuthorization, header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
