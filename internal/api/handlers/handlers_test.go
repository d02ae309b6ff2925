package handlers_test

import (
	"Pick-My-Dish/cmd/config"
	"Pick-My-Dish/entities"
	"Pick-My-Dish/internal/testutil"
	"Pick-My-Dish/internal/utils"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type testApp struct {
	app       *fiber.App
	db        *gorm.DB
	uploadDir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := utils.DefaultConfig()
	cfg.JWTSecret = "secret"
	cfg.RateLimitMax = 0
	cfg.StorageDriver = "local"
	cfg.UploadDir = t.TempDir()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "app.log")
	cfg.DefaultCategoryID = 6

	db := testutil.NewDB(t)
	app, err := config.NewApp(&cfg, db)
	require.NoError(t, err)
	return &testApp{app: app, db: db, uploadDir: cfg.UploadDir}
}

func (a *testApp) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func (a *testApp) json(t *testing.T, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return a.do(t, req)
}

func (a *testApp) get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	return a.do(t, httptest.NewRequest(fiber.MethodGet, path, nil))
}

type upload struct {
	name    string
	content []byte
}

func multipartRequest(t *testing.T, fields map[string]string, images ...upload) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, img := range images {
		part, err := writer.CreateFormFile("image", img.name)
		require.NoError(t, err)
		_, err = part.Write(img.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/recipes", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func (a *testApp) register(t *testing.T, username, email string) uint {
	t.Helper()
	status, body := a.json(t, fiber.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "email": email, "password": "secret1"}, "")
	require.Equal(t, fiber.StatusCreated, status, body)
	return uint(body["userId"].(float64))
}

func (a *testApp) ingredient(t *testing.T, name string) uint {
	t.Helper()
	status, body := a.json(t, fiber.MethodPost, "/api/ingredients", map[string]string{"name": name}, "")
	require.Equal(t, fiber.StatusCreated, status, body)
	return uint(body["ingredientId"].(float64))
}

func (a *testApp) recipeCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.Model(&entities.Recipe{}).Count(&n).Error)
	return n
}

func (a *testApp) storedImages(t *testing.T) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(a.uploadDir, "recipes"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}
