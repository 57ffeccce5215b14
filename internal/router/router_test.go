package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/config"
	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/handler"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.User{}, &db.Work{}, &db.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	api, err := handler.NewAPI(gdb, t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("failed to build api: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret: "test-secret",
		UploadDir:     t.TempDir(),
	}
	return Setup(api, cfg)
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestPublicRoutesAreOpen(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/", "/ping", "/api/homepage", "/api/about", "/api/works", "/api/contact"} {
		if recorder := get(router, path); recorder.Code != http.StatusOK {
			t.Fatalf("%s: expected %d, got %d", path, http.StatusOK, recorder.Code)
		}
	}
}

func TestBothDetailSpellingsResolve(t *testing.T) {
	router := setupRouter(t)

	// Both spellings route to the detail handler; an unknown slug is a
	// handler-level 404, not a routing miss.
	for _, path := range []string{"/api/work/missing", "/api/works/missing"} {
		if recorder := get(router, path); recorder.Code != http.StatusNotFound {
			t.Fatalf("%s: expected %d, got %d", path, http.StatusNotFound, recorder.Code)
		}
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/works"},
		{http.MethodGet, "/api/admin/settings"},
		{http.MethodGet, "/api/admin/session"},
		{http.MethodPost, "/api/admin/preview"},
		{http.MethodPost, "/api/admin/logout"},
	}
	for _, tt := range paths {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, http.StatusUnauthorized, recorder.Code)
		}
	}
}

func TestLoginRouteIsOpen(t *testing.T) {
	router := setupRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/admin/login", nil))

	// No user and no payload still reaches the handler instead of the
	// auth middleware.
	if recorder.Code != http.StatusBadRequest && recorder.Code != http.StatusUnauthorized {
		t.Fatalf("login: expected 400 or 401, got %d", recorder.Code)
	}
}
