package skill

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/models"
	"github.com/socampo/folio-core/internal/modules/content/shape"
	"github.com/socampo/folio-core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SkillDTO is the flat wire record for create and update.
type SkillDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

func (dto *SkillDTO) validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	if !models.ValidSkillCategory(dto.Category) {
		return fmt.Errorf("category must be one of %s", strings.Join(models.SkillCategories, ", "))
	}
	return nil
}

func (dto *SkillDTO) apply(s *models.SkillModel) {
	s.Name = dto.Name
	s.Category = dto.Category
	s.Icon = dto.Icon
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListAll() ([]models.SkillModel, error) {
	var items []models.SkillModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.SkillModel, error) {
	var sk models.SkillModel
	if err := s.db.First(&sk, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sk, nil
}

func (s *Service) Create(dto *SkillDTO) (*models.SkillModel, error) {
	var sk models.SkillModel
	dto.apply(&sk)
	return &sk, s.db.Create(&sk).Error
}

// Update replaces every field unconditionally; there is no partial patch.
func (s *Service) Update(id string, dto *SkillDTO) (*models.SkillModel, error) {
	sk, err := s.GetByID(id)
	if err != nil || sk == nil {
		return sk, err
	}
	dto.apply(sk)
	if err := s.db.Model(sk).Select("*").Omit("id", "created_at").Updates(sk).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the row by id. Deleting an absent id succeeds.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.SkillModel{}, "id = ?", id).Error
}

type Handler struct {
	svc      *Service
	log      *zap.Logger
	onMutate func(context.Context)
}

func NewHandler(svc *Service, log *zap.Logger, onMutate func(context.Context)) *Handler {
	return &Handler{svc: svc, log: log, onMutate: onMutate}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	g := rg.Group("/skills", adminMW)
	g.POST("", h.create)
	g.PUT("", h.update)
	g.DELETE("", h.delete)
}

func (h *Handler) bind(c *gin.Context) (*SkillDTO, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "cannot read body")
		return nil, false
	}
	var dto SkillDTO
	if err := shape.DecodeLoose(body, &dto); err != nil {
		response.BadRequest(c, "invalid json body")
		return nil, false
	}
	return &dto, true
}

func (h *Handler) create(c *gin.Context) {
	dto, ok := h.bind(c)
	if !ok {
		return
	}
	if err := dto.validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	sk, err := h.svc.Create(dto)
	if err != nil {
		h.log.Error("create skill failed", zap.Error(err))
		response.InternalError(c, "failed to create skill")
		return
	}
	h.mutated(c)
	response.Created(c, sk)
}

func (h *Handler) update(c *gin.Context) {
	dto, ok := h.bind(c)
	if !ok {
		return
	}
	if strings.TrimSpace(dto.ID) == "" {
		response.BadRequest(c, "id is required")
		return
	}
	if err := dto.validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	sk, err := h.svc.Update(dto.ID, dto)
	if err != nil {
		h.log.Error("update skill failed", zap.String("id", dto.ID), zap.Error(err))
		response.InternalError(c, "failed to update skill")
		return
	}
	if sk == nil {
		response.NotFound(c)
		return
	}
	h.mutated(c)
	response.OK(c, sk)
}

func (h *Handler) delete(c *gin.Context) {
	dto, ok := h.bind(c)
	if !ok {
		return
	}
	if strings.TrimSpace(dto.ID) == "" {
		response.BadRequest(c, "id is required")
		return
	}
	if err := h.svc.Delete(dto.ID); err != nil {
		h.log.Error("delete skill failed", zap.String("id", dto.ID), zap.Error(err))
		response.InternalError(c, "failed to delete skill")
		return
	}
	h.mutated(c)
	response.OK(c, gin.H{"success": true})
}

func (h *Handler) mutated(c *gin.Context) {
	if h.onMutate != nil {
		h.onMutate(c.Request.Context())
	}
}
