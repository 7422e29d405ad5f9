// Package aggregate produces the merged display payload: dynamic rows first,
// static seed records appended after, with no de-duplication. Every record is
// tagged with its origin so the admin UI knows what is editable.
package aggregate

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/models"
	"github.com/socampo/folio-core/internal/modules/content/seed"
	"github.com/socampo/folio-core/internal/modules/content/shape"
	pkgredis "github.com/socampo/folio-core/internal/pkg/redis"
	"github.com/socampo/folio-core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	cacheKey = "folio:aggregate"
	cacheTTL = 15 * time.Second
)

// ProjectView is the canonical merged project record: snake_case keys,
// comma-joined fields split into sequences (never null).
type ProjectView struct {
	ID           string    `json:"id"`
	TitleEn      string    `json:"title_en"`
	TitleEs      string    `json:"title_es"`
	ShortDescEn  string    `json:"short_desc_en"`
	ShortDescEs  string    `json:"short_desc_es"`
	FullDescEn   string    `json:"full_desc_en"`
	FullDescEs   string    `json:"full_desc_es"`
	Year         string    `json:"year"`
	Technologies []string  `json:"technologies"`
	LiveURL      string    `json:"live_url"`
	CodeURL      string    `json:"code_url"`
	TagsEn       []string  `json:"tags_en"`
	TagsEs       []string  `json:"tags_es"`
	MediaImages  []string  `json:"media_images"`
	MediaVideos  []string  `json:"media_videos"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
	IsDynamic    bool      `json:"is_dynamic"`
	IsEditable   bool      `json:"is_editable"`
}

type PublicationView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CitationAPA string    `json:"citation_apa"`
	URL         string    `json:"url"`
	Lang        string    `json:"lang"`
	TagsEn      []string  `json:"tags_en"`
	TagsEs      []string  `json:"tags_es"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
	IsDynamic   bool      `json:"is_dynamic"`
	IsEditable  bool      `json:"is_editable"`
}

type SkillView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Icon       string `json:"icon"`
	IsDynamic  bool   `json:"is_dynamic"`
	IsEditable bool   `json:"is_editable"`
}

// Payload is the aggregate fetch response body.
type Payload struct {
	Projects     []ProjectView     `json:"projects"`
	Publications []PublicationView `json:"publications"`
	Skills       []SkillView       `json:"skills"`
}

func projectView(p *models.ProjectModel, dynamic bool) ProjectView {
	return ProjectView{
		ID:           p.ID,
		TitleEn:      p.TitleEn,
		TitleEs:      p.TitleEs,
		ShortDescEn:  p.ShortDescEn,
		ShortDescEs:  p.ShortDescEs,
		FullDescEn:   p.FullDescEn,
		FullDescEs:   p.FullDescEs,
		Year:         p.Year,
		Technologies: shape.SplitList(p.Technologies),
		LiveURL:      p.LiveURL,
		CodeURL:      p.CodeURL,
		TagsEn:       shape.SplitList(p.TagsEn),
		TagsEs:       shape.SplitList(p.TagsEs),
		MediaImages:  stringList(p.MediaImages),
		MediaVideos:  stringList(p.MediaVideos),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		IsDynamic:    dynamic,
		IsEditable:   dynamic,
	}
}

func publicationView(p *models.PublicationModel, dynamic bool) PublicationView {
	return PublicationView{
		ID:          p.ID,
		Title:       p.Title,
		CitationAPA: p.CitationAPA,
		URL:         p.URL,
		Lang:        p.Lang,
		TagsEn:      shape.SplitList(p.TagsEn),
		TagsEs:      shape.SplitList(p.TagsEs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		IsDynamic:   dynamic,
		IsEditable:  dynamic,
	}
}

func skillView(s *models.SkillModel, dynamic bool) SkillView {
	return SkillView{
		ID:         s.ID,
		Name:       s.Name,
		Category:   s.Category,
		Icon:       s.Icon,
		IsDynamic:  dynamic,
		IsEditable: dynamic,
	}
}

func stringList(a models.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return a
}

// MergeProjects concatenates dynamic rows (store order preserved) with the
// static seeds. Records are not de-duplicated; a static and a dynamic record
// describing the same project both appear.
func MergeProjects(dynamic, static []models.ProjectModel) []ProjectView {
	out := make([]ProjectView, 0, len(dynamic)+len(static))
	for i := range dynamic {
		out = append(out, projectView(&dynamic[i], true))
	}
	for i := range static {
		out = append(out, projectView(&static[i], false))
	}
	return out
}

func MergePublications(dynamic, static []models.PublicationModel) []PublicationView {
	out := make([]PublicationView, 0, len(dynamic)+len(static))
	for i := range dynamic {
		out = append(out, publicationView(&dynamic[i], true))
	}
	for i := range static {
		out = append(out, publicationView(&static[i], false))
	}
	return out
}

func MergeSkills(dynamic, static []models.SkillModel) []SkillView {
	out := make([]SkillView, 0, len(dynamic)+len(static))
	for i := range dynamic {
		out = append(out, skillView(&dynamic[i], true))
	}
	for i := range static {
		out = append(out, skillView(&static[i], false))
	}
	return out
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Build fetches all dynamic rows and merges them with the static seeds.
func (s *Service) Build() (*Payload, error) {
	var (
		projects     []models.ProjectModel
		publications []models.PublicationModel
		skills       []models.SkillModel
	)
	if err := s.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("created_at DESC").Find(&publications).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("created_at DESC").Find(&skills).Error; err != nil {
		return nil, err
	}

	return &Payload{
		Projects:     MergeProjects(projects, seed.Projects()),
		Publications: MergePublications(publications, seed.Publications()),
		Skills:       MergeSkills(skills, seed.Skills()),
	}, nil
}

type Handler struct {
	svc *Service
	rc  *pkgredis.Client
	log *zap.Logger
}

func NewHandler(svc *Service, rc *pkgredis.Client, log *zap.Logger) *Handler {
	return &Handler{svc: svc, rc: rc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/aggregate", h.get)
}

// Invalidate drops the cached payload. Content handlers call this after
// every successful mutation.
func (h *Handler) Invalidate(ctx context.Context) {
	if h.rc == nil {
		return
	}
	if err := h.rc.Del(ctx, cacheKey); err != nil {
		h.log.Warn("aggregate cache purge failed", zap.Error(err))
	}
}

func (h *Handler) get(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rc != nil {
		if cached, err := h.rc.Get(ctx, cacheKey); err == nil && cached != "" {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	payload, err := h.svc.Build()
	if err != nil {
		h.log.Error("aggregate build failed", zap.Error(err))
		response.InternalError(c, "failed to fetch data")
		return
	}

	if h.rc != nil {
		if raw, err := json.Marshal(payload); err == nil {
			if err := h.rc.Set(ctx, cacheKey, raw, cacheTTL); err != nil {
				h.log.Warn("aggregate cache set failed", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, payload)
}
