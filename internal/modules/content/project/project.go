package project

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/models"
	"github.com/socampo/folio-core/internal/modules/content/shape"
	"github.com/socampo/folio-core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectDTO is the flat wire record for create and update. Payload keys may
// use camelCase or snake_case; both decode into the same field.
type ProjectDTO struct {
	ID           string   `json:"id"`
	TitleEn      string   `json:"title_en"`
	TitleEs      string   `json:"title_es"`
	ShortDescEn  string   `json:"short_desc_en"`
	ShortDescEs  string   `json:"short_desc_es"`
	FullDescEn   string   `json:"full_desc_en"`
	FullDescEs   string   `json:"full_desc_es"`
	Year         string   `json:"year"`
	Technologies string   `json:"technologies"`
	LiveURL      string   `json:"live_url"`
	CodeURL      string   `json:"code_url"`
	TagsEn       string   `json:"tags_en"`
	TagsEs       string   `json:"tags_es"`
	MediaImages  []string `json:"media_images"`
	MediaVideos  []string `json:"media_videos"`
}

func (dto *ProjectDTO) validate() error {
	if strings.TrimSpace(dto.TitleEn) == "" || strings.TrimSpace(dto.TitleEs) == "" {
		return errors.New("title_en and title_es are required")
	}
	return nil
}

func (dto *ProjectDTO) apply(p *models.ProjectModel) {
	p.TitleEn = dto.TitleEn
	p.TitleEs = dto.TitleEs
	p.ShortDescEn = dto.ShortDescEn
	p.ShortDescEs = dto.ShortDescEs
	p.FullDescEn = dto.FullDescEn
	p.FullDescEs = dto.FullDescEs
	p.Year = dto.Year
	p.Technologies = dto.Technologies
	p.LiveURL = dto.LiveURL
	p.CodeURL = dto.CodeURL
	p.TagsEn = dto.TagsEn
	p.TagsEs = dto.TagsEs
	p.MediaImages = dto.MediaImages
	p.MediaVideos = dto.MediaVideos
	if p.MediaImages == nil {
		p.MediaImages = models.StringArray{}
	}
	if p.MediaVideos == nil {
		p.MediaVideos = models.StringArray{}
	}
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListAll() ([]models.ProjectModel, error) {
	var items []models.ProjectModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(dto *ProjectDTO) (*models.ProjectModel, error) {
	var p models.ProjectModel
	dto.apply(&p)
	return &p, s.db.Create(&p).Error
}

// Update replaces every field unconditionally; there is no partial patch.
func (s *Service) Update(id string, dto *ProjectDTO) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
	}
	dto.apply(p)
	if err := s.db.Model(p).Select("*").Omit("id", "created_at").Updates(p).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the row by id. Deleting an absent id succeeds.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ProjectModel{}, "id = ?", id).Error
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
	g := rg.Group("/projects", adminMW)
	g.POST("", h.create)
	g.PUT("", h.update)
	g.DELETE("", h.delete)
}

func (h *Handler) bind(c *gin.Context) (*ProjectDTO, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "cannot read body")
		return nil, false
	}
	var dto ProjectDTO
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
	p, err := h.svc.Create(dto)
	if err != nil {
		h.log.Error("create project failed", zap.Error(err))
		response.InternalError(c, "failed to create project")
		return
	}
	h.mutated(c)
	response.Created(c, p)
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
	p, err := h.svc.Update(dto.ID, dto)
	if err != nil {
		h.log.Error("update project failed", zap.String("id", dto.ID), zap.Error(err))
		response.InternalError(c, "failed to update project")
		return
	}
	if p == nil {
		response.NotFound(c)
		return
	}
	h.mutated(c)
	response.OK(c, p)
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
		h.log.Error("delete project failed", zap.String("id", dto.ID), zap.Error(err))
		response.InternalError(c, "failed to delete project")
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
