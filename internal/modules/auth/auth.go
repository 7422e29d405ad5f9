// Package auth handles credential login, session introspection, logout and
// the one-time owner registration used to bootstrap a fresh deployment.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/config"
	"github.com/socampo/folio-core/internal/middleware"
	"github.com/socampo/folio-core/internal/models"
	"github.com/socampo/folio-core/internal/pkg/response"
	sessionpkg "github.com/socampo/folio-core/internal/pkg/session"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type loginResponse struct {
	Token string `json:"token"`
}

var (
	errBadCredentials      = errors.New("bad credentials")
	errAlreadyBootstrapped = errors.New("owner already registered")
	errEmailNotAllowed     = errors.New("email not on allow list")
)

type Service struct {
	db  *gorm.DB
	cfg *config.AppConfig
}

func NewService(db *gorm.DB, cfg *config.AppConfig) *Service {
	return &Service{db: db, cfg: cfg}
}

// Login verifies the password and issues a session token. Unknown email and
// wrong password take the same failure path so the response never reveals
// which one was wrong.
func (s *Service) Login(email, password, ip, ua string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(time.Second)
			return "", errBadCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(time.Second)
		return "", errBadCredentials
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", err
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	})
	return token, nil
}

// Register creates the first account. It refuses once any user exists and
// only accepts an email on the admin allow list.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errAlreadyBootstrapped
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if !s.cfg.IsAdminEmail(email) {
		return nil, errEmailNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = email
	}
	u := models.UserModel{Email: email, Name: name, Password: string(hash)}
	return &u, s.db.Create(&u).Error
}

func (s *Service) Logout(userID, sessionID string) error {
	return sessionpkg.Revoke(s.db, userID, sessionID)
}

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/login", h.login)
	a.POST("/register", h.register)
	a.POST("/logout", authMW, h.logout)
	a.GET("/me", authMW, h.me)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errBadCredentials) {
			response.Unauthorized(c)
			return
		}
		h.log.Error("login failed", zap.Error(err))
		response.InternalError(c, "login failed")
		return
	}
	response.OK(c, loginResponse{Token: token})
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Register(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errAlreadyBootstrapped):
			response.Conflict(c, "owner already registered")
		case errors.Is(err, errEmailNotAllowed):
			response.Forbidden(c)
		default:
			h.log.Error("register failed", zap.Error(err))
			response.InternalError(c, "register failed")
		}
		return
	}
	response.Created(c, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	})
}

func (h *Handler) logout(c *gin.Context) {
	err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		h.log.Error("logout failed", zap.Error(err))
		response.InternalError(c, "logout failed")
		return
	}
	response.NoContent(c)
}

func (h *Handler) me(c *gin.Context) {
	var u models.UserModel
	if err := h.svc.db.First(&u, "id = ?", middleware.CurrentUserID(c)).Error; err != nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar":     u.Avatar,
		"is_admin":   h.svc.cfg.IsAdminEmail(u.Email),
		"last_login": u.LastLoginTime,
	})
}
