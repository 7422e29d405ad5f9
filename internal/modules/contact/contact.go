// Package contact exposes the public contact form endpoint.
package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/config"
	"github.com/socampo/folio-core/internal/pkg/mail"
	"github.com/socampo/folio-core/internal/pkg/response"
	"go.uber.org/zap"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxMessageLen = 5000

// ContactDTO carries the form fields. Company is a honeypot: humans never
// see it, bots fill it in.
type ContactDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Company string `json:"company"`
}

func (d *ContactDTO) validate() string {
	if strings.TrimSpace(d.Name) == "" {
		return "name is required"
	}
	if !emailRe.MatchString(strings.TrimSpace(d.Email)) {
		return "a valid email is required"
	}
	if strings.TrimSpace(d.Message) == "" {
		return "message is required"
	}
	if len(d.Message) > maxMessageLen {
		return "message is too long"
	}
	return ""
}

type sender interface {
	Enabled() bool
	Send(mail.Message) error
}

type Handler struct {
	sender sender
	to     string
	log    *zap.Logger
}

func NewHandler(cfg *config.AppConfig, log *zap.Logger) *Handler {
	return &Handler{
		sender: mail.New(cfg.Mail),
		to:     cfg.Mail.To,
		log:    log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var dto ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// Bots that filled the honeypot get a convincing success and nothing else.
	if strings.TrimSpace(dto.Company) != "" {
		h.log.Info("contact honeypot tripped", zap.String("ip", c.ClientIP()))
		response.OK(c, gin.H{"success": true})
		return
	}

	if msg := dto.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	if !h.sender.Enabled() || h.to == "" {
		h.log.Warn("contact submission dropped: mail is not configured")
		response.InternalError(c, "failed to send message")
		return
	}

	err := h.sender.Send(mail.Message{
		To:      []string{h.to},
		ReplyTo: strings.TrimSpace(dto.Email),
		Subject: fmt.Sprintf("Portfolio contact from %s", strings.TrimSpace(dto.Name)),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\n\n%s",
			strings.TrimSpace(dto.Name), strings.TrimSpace(dto.Email), dto.Message),
	})
	if err != nil {
		h.log.Error("contact send failed", zap.Error(err))
		response.InternalError(c, "failed to send message")
		return
	}

	response.OK(c, gin.H{"success": true})
}
