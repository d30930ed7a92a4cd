package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ripple/internal/auth"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/models"
)

// newTestApp builds a server against an in-memory database and returns the
// Fiber app with all API routes mounted.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s := NewServerWithDeps(&config.Config{Port: "0", Env: "test"}, db, nil)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

// doJSON issues a request with the given JSON body and decodes the response
// envelope into a map.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// seedUser inserts a user directly, bypassing the HTTP surface.
func seedUser(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword("sesame123")
	require.NoError(t, err)
	user := &models.User{
		Username:  username,
		FirstName: "Test" + username,
		LastName:  "User",
		Email:     username + "@example.com",
		Password:  hashed,
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

// seedPost inserts a post directly.
func seedPost(t *testing.T, s *Server, authorID uint, desc string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: authorID, Desc: desc}
	require.NoError(t, s.db.Create(post).Error)
	return post
}
