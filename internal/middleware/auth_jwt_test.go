package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, sub string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func echoApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTAuth(testSecret))
	app.Get("/open", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		return c.JSON(fiber.Map{"user_id": uid})
	})
	app.Get("/guarded", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestJWTAuth(t *testing.T) {
	app := echoApp()
	uid := bson.NewObjectID().Hex()

	t.Run("no header passes through anonymous", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/open", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("valid token lands in locals", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, uid, time.Hour))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uid, time.Hour))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, uid, -time.Minute))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("guarded route without token is 401", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("subject that is not an object id is rejected at the guard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "not-a-hex-id", time.Hour))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
