package middleware

import (
	"net/http/httptest"
	"sat/config"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTCarriesClaims(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(7, 3, "Ana", RoleEmployee)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["subjectId"])
	assert.Equal(t, float64(3), claims["companyId"])
	assert.Equal(t, "Ana", claims["name"])
	assert.Equal(t, RoleEmployee, claims["role"])
}

func TestJWTMiddlewareSetsLocals(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		assert.Equal(t, uint(7), c.Locals("subjectId"))
		assert.Equal(t, uint(3), c.Locals("companyId"))
		assert.Equal(t, RoleEmployee, c.Locals("role"))
		return c.SendStatus(fiber.StatusOK)
	})

	tokenString, err := GenerateJWT(7, 3, "Ana", RoleEmployee)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// No header
	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Wrong scheme
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Garbage token
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/master", JWTMiddleware, RequireRole(RoleMaster), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tokenString, err := GenerateJWT(7, 3, "Ana", RoleEmployee)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/master", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireEmployeeScope(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/api/employee/:employeeId/profile", JWTMiddleware, RequireEmployeeScope, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tokenString, err := GenerateJWT(7, 3, "Ana", RoleEmployee)
	require.NoError(t, err)

	// Own route passes
	req := httptest.NewRequest("GET", "/api/employee/7/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Another employee's route is forbidden
	req = httptest.NewRequest("GET", "/api/employee/8/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
