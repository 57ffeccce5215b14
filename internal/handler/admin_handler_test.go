package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func setupAdminRouter(t *testing.T, name string) (*gin.Engine, *API) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := setupHandlerTestDB(t, name)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: "admin", Password: string(hash)}).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	api, err := NewAPI(gdb, t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("failed to build api: %v", err)
	}

	router := gin.New()
	router.Use(sessions.Sessions("portfolio_session", cookie.NewStore([]byte("test-secret"))))
	router.POST("/api/admin/login", api.Login)

	auth := router.Group("/api/admin")
	auth.Use(AuthRequired())
	{
		auth.POST("/logout", api.Logout)
		auth.GET("/session", api.Session)
		auth.GET("/works", api.GetWorks)
	}
	return router, api
}

func login(t *testing.T, router *gin.Engine, username, password string) []string {
	t.Helper()

	body := `{"username":"` + username + `","password":"` + password + `"}`
	request := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("login: expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	return recorder.Result().Header["Set-Cookie"]
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := setupAdminRouter(t, "admin-login-bad")

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nobody","password":"secret123"}`,
	} {
		recorder := doJSON(t, router, http.MethodPost, "/api/admin/login", body)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("expected %d, got %d for %s", http.StatusUnauthorized, recorder.Code, body)
		}
		if resp := decodeBody(t, recorder); resp["error"] != "invalid username or password" {
			t.Fatalf("unexpected error: %v", resp["error"])
		}
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	router, _ := setupAdminRouter(t, "admin-login-ok")

	cookies := login(t, router, "admin", "secret123")
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}

	request := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	for _, c := range cookies {
		request.Header.Add("Cookie", c)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("session probe: expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if body := decodeBody(t, recorder); body["username"] != "admin" {
		t.Fatalf("unexpected session user: %v", body["username"])
	}
}

func TestAuthRequiredBlocksAnonymous(t *testing.T) {
	router, _ := setupAdminRouter(t, "admin-auth-block")

	for _, path := range []string{"/api/admin/session", "/api/admin/works"} {
		recorder := doJSON(t, router, http.MethodGet, path, "")
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected %d, got %d", path, http.StatusUnauthorized, recorder.Code)
		}
		if body := decodeBody(t, recorder); body["error"] != "authentication required" {
			t.Fatalf("unexpected error: %v", body["error"])
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := setupAdminRouter(t, "admin-logout")

	cookies := login(t, router, "admin", "secret123")

	request := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	for _, c := range cookies {
		request.Header.Add("Cookie", c)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("logout: expected %d, got %d", http.StatusOK, recorder.Code)
	}

	// The cleared cookie no longer authenticates.
	request = httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	for _, c := range recorder.Result().Header["Set-Cookie"] {
		request.Header.Add("Cookie", c)
	}
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("session after logout: expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}
