package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/models"
	"github.com/akwaflow/website/routes"
	"github.com/akwaflow/website/utils"
)

const testAdminPassword = "correct horse battery staple"

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		SessionSecret:           "test-session-secret",
		UploadDir:               t.TempDir(),
		AdminUsername:           "admin",
		AllowedOrigins:          []string{"*"},
		GinMode:                 "test",
		GinPath:                 filepath.Join(t.TempDir(), "gin.log"),
		LogLevel:                "error",
		LogMaxSizeMB:            1,
		LogMaxBackups:           1,
		LogMaxAgeDays:           1,
		LoginRateLimitPerMinute: 10000,
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Contact{}, &models.AdminUser{}))
	return db
}

// newTestServer wires a full router over an in-memory store with a seeded
// admin user.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, config.AppConfig) {
	t.Helper()
	cfg := testConfig(t)
	db := testDB(t)

	hash, err := utils.HashPassword(testAdminPassword)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{Username: cfg.AdminUsername, Password: hash}).Error)

	return routes.SetupRouter(db, cfg), db, cfg
}

func seedPost(t *testing.T, db *gorm.DB, post models.Post) models.Post {
	t.Helper()
	require.NoError(t, db.Create(&post).Error)
	return post
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formRequest(path string, form url.Values, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func getRequest(path string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// loginAdmin authenticates against the seeded admin user and returns the
// session cookies.
func loginAdmin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	form := url.Values{"username": {"admin"}, "password": {testAdminPassword}}
	w := doRequest(r, formRequest("/admin/login", form, nil))
	require.Equal(t, http.StatusFound, w.Code, "login should succeed: %s", w.Body.String())
	require.Equal(t, "/admin", w.Result().Header.Get("Location"))
	return w.Result().Cookies()
}

// multipartRequest builds a multipart POST. fileName may be empty to omit the
// file field.
func multipartRequest(t *testing.T, path string, fields map[string]string, fileName string, fileContent []byte, cookies []*http.Cookie) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func at(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
}
