package publication

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

// PublicationDTO is the flat wire record for create and update. Keys may be
// camelCase (citationApa) or snake_case (citation_apa).
type PublicationDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CitationAPA string `json:"citation_apa"`
	URL         string `json:"url"`
	Lang        string `json:"lang"`
	TagsEn      string `json:"tags_en"`
	TagsEs      string `json:"tags_es"`
}

func (dto *PublicationDTO) validate() error {
	if strings.TrimSpace(dto.Title) == "" {
		return errors.New("title is required")
	}
	if lang := strings.TrimSpace(dto.Lang); lang != "" && len(lang) != 2 {
		return errors.New("lang must be a two-letter code")
	}
	return nil
}

func (dto *PublicationDTO) apply(p *models.PublicationModel) {
	p.Title = dto.Title
	p.CitationAPA = dto.CitationAPA
	p.URL = dto.URL
	p.Lang = strings.ToLower(strings.TrimSpace(dto.Lang))
	p.TagsEn = dto.TagsEn
	p.TagsEs = dto.TagsEs
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListAll() ([]models.PublicationModel, error) {
	var items []models.PublicationModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.PublicationModel, error) {
	var p models.PublicationModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(dto *PublicationDTO) (*models.PublicationModel, error) {
	var p models.PublicationModel
	dto.apply(&p)
	return &p, s.db.Create(&p).Error
}

// Update replaces every field unconditionally; there is no partial patch.
func (s *Service) Update(id string, dto *PublicationDTO) (*models.PublicationModel, error) {
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
	return s.db.Delete(&models.PublicationModel{}, "id = ?", id).Error
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
	g := rg.Group("/publications", adminMW)
	g.POST("", h.create)
	g.PUT("", h.update)
	g.DELETE("", h.delete)
}

func (h *Handler) bind(c *gin.Context) (*PublicationDTO, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "cannot read body")
		return nil, false
	}
	var dto PublicationDTO
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
		h.log.Error("create publication failed", zap.Error(err))
		response.InternalError(c, "failed to create publication")
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
		h.log.Error("update publication failed", zap.String("id", dto.ID), zap.Error(err))
		response.InternalError(c, "failed to update publication")
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
		h.log.Error("delete publication failed", zap.String("id", dto.ID), zap.Error(err))
		response.InternalError(c, "failed to delete publication")
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
