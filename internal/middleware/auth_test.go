package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/socampo/folio-core/internal/config"
	"github.com/socampo/folio-core/internal/models"
	sessionpkg "github.com/socampo/folio-core/internal/pkg/session"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"  Bearer   abc  ", "abc"},
	}
	for _, tt := range tests {
		if got := NormalizeToken(tt.in); got != tt.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func gateSetup(t *testing.T) (*gin.Engine, *gorm.DB) {
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
	r := gin.New()
	r.GET("/admin", AdminGate(db, cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CurrentUserEmail(c)})
	})
	return r, db
}

func issueFor(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	u := models.UserModel{Email: email, Name: email, Password: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, _, err := sessionpkg.Issue(db, u.ID, "127.0.0.1", "test", sessionpkg.DefaultTTL)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func hitAdmin(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminGateUniformRejection(t *testing.T) {
	r, db := gateSetup(t)
	outsider := issueFor(t, db, "member@example.com")

	var bodies []string
	for _, token := range []string{"", "garbage-token", outsider} {
		rec := hitAdmin(r, token)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: status = %d, want 401", token, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}
	// Missing token, bad token and non-admin account must be indistinguishable.
	for _, b := range bodies[1:] {
		if b != bodies[0] {
			t.Errorf("rejection bodies differ: %q vs %q", bodies[0], b)
		}
	}
}

func TestAdminGateAdmitsAllowListedEmail(t *testing.T) {
	r, db := gateSetup(t)
	token := issueFor(t, db, "owner@example.com")

	rec := hitAdmin(r, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Email != "owner@example.com" {
		t.Errorf("email = %q", resp.Email)
	}
}

func TestAdminGateRejectsRevokedSession(t *testing.T) {
	r, db := gateSetup(t)
	token := issueFor(t, db, "owner@example.com")

	var u models.UserModel
	if err := db.First(&u, "email = ?", "owner@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	var sess models.UserSession
	if err := db.First(&sess, "user_id = ?", u.ID).Error; err != nil {
		t.Fatalf("load session: %v", err)
	}
	if err := sessionpkg.Revoke(db, u.ID, sess.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	if rec := hitAdmin(r, token); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 after revocation", rec.Code)
	}
}
