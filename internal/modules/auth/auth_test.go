package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/socampo/folio-core/internal/config"
	"github.com/socampo/folio-core/internal/middleware"
	"github.com/socampo/folio-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testSetup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.UserModel{}, &models.UserSession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.AppConfig{AdminEmails: []string{"owner@example.com"}}
	h := NewHandler(NewService(db, cfg), zap.NewNop())

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), middleware.Auth(db))
	return r, db
}

func post(t *testing.T, r *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterOnlyOnceAndOnlyAllowListed(t *testing.T) {
	r, _ := testSetup(t)

	rec := post(t, r, "/api/v1/auth/register", gin.H{
		"email": "intruder@example.com", "password": "supersecret",
	}, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("off-list register status = %d, want 403", rec.Code)
	}

	rec = post(t, r, "/api/v1/auth/register", gin.H{
		"email": "owner@example.com", "password": "supersecret", "name": "Owner",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = post(t, r, "/api/v1/auth/register", gin.H{
		"email": "owner@example.com", "password": "supersecret",
	}, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("second register status = %d, want 409", rec.Code)
	}
}

func TestLoginThenMeThenLogout(t *testing.T) {
	r, db := testSetup(t)

	rec := post(t, r, "/api/v1/auth/register", gin.H{
		"email": "owner@example.com", "password": "supersecret",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	rec = post(t, r, "/api/v1/auth/login", gin.H{
		"email": "OWNER@example.com", "password": "supersecret",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil || loginResp.Token == "" {
		t.Fatalf("no token in login response: %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	meRec := httptest.NewRecorder()
	r.ServeHTTP(meRec, req)
	if meRec.Code != http.StatusOK {
		t.Fatalf("me status = %d: %s", meRec.Code, meRec.Body.String())
	}
	var me struct {
		Email   string `json:"email"`
		IsAdmin bool   `json:"is_admin"`
	}
	if err := json.Unmarshal(meRec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Email != "owner@example.com" || !me.IsAdmin {
		t.Errorf("me = %+v, want owner with is_admin", me)
	}

	rec = post(t, r, "/api/v1/auth/logout", gin.H{}, loginResp.Token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", rec.Code)
	}

	// Revoked session must no longer authenticate.
	meRec = httptest.NewRecorder()
	r.ServeHTTP(meRec, req.Clone(req.Context()))
	if meRec.Code != http.StatusUnauthorized {
		t.Errorf("me after logout status = %d, want 401", meRec.Code)
	}

	var count int64
	db.Model(&models.UserSession{}).Where("revoked_at IS NOT NULL").Count(&count)
	if count != 1 {
		t.Errorf("expected one revoked session, got %d", count)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := testSetup(t)
	post(t, r, "/api/v1/auth/register", gin.H{
		"email": "owner@example.com", "password": "supersecret",
	}, "")

	rec := post(t, r, "/api/v1/auth/login", gin.H{
		"email": "owner@example.com", "password": "wrong-password",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", rec.Code)
	}
}
