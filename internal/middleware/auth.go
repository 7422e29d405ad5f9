package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/config"
	"github.com/socampo/folio-core/internal/models"
	"github.com/socampo/folio-core/internal/pkg/jwt"
	"github.com/socampo/folio-core/internal/pkg/response"
	sessionpkg "github.com/socampo/folio-core/internal/pkg/session"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeySID       = "session_id"
)

// Auth returns a middleware that enforces bearer-token authentication and
// loads the caller's account into the request context.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, claims, err := resolveUser(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		setCurrentUser(c, user, claims)
		c.Next()
	}
}

// OptionalAuth resolves the caller's account when a valid token is present
// but lets the request through either way.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, claims, err := resolveUser(db, extractToken(c)); err == nil {
			setCurrentUser(c, user, claims)
		}
		c.Next()
	}
}

// AdminGate returns a middleware that re-validates, per request, that the
// resolved account's email is on the configured admin allow-list. Every
// failure mode (missing token, dead session, unknown account, email not
// listed) produces the same unauthorized response.
func AdminGate(db *gorm.DB, cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, claims, err := resolveUser(db, extractToken(c))
		if err != nil || !cfg.IsAdminEmail(user.Email) {
			response.Unauthorized(c)
			return
		}
		setCurrentUser(c, user, claims)
		c.Next()
	}
}

// resolveUser validates the token, checks session liveness, and loads the
// account row. Nothing is cached between requests.
func resolveUser(db *gorm.DB, rawToken string) (*models.UserModel, *jwt.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, nil, errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, nil, err
	}
	active, err := sessionpkg.IsActive(db, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if !active {
		return nil, nil, errors.New("session expired or revoked")
	}

	var user models.UserModel
	if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, nil, err
	}
	return &user, claims, nil
}

func setCurrentUser(c *gin.Context, user *models.UserModel, claims *jwt.Claims) {
	c.Set(ContextKeyUserID, user.ID)
	c.Set(ContextKeyUserEmail, user.Email)
	if claims.SessionID != "" {
		c.Set(ContextKeySID, claims.SessionID)
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentUserEmail extracts the authenticated user email from context.
func CurrentUserEmail(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserEmail)
	email, _ := v.(string)
	return email
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
