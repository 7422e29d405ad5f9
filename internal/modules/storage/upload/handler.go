package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/socampo/folio-core/internal/config"
	"github.com/socampo/folio-core/internal/pkg/response"
	"go.uber.org/zap"
)

const (
	MediaTypeImages = "images"
	MediaTypeVideos = "videos"
)

type Handler struct {
	store     BlobStore
	staticDir string // non-empty only when backed by the local disk store
	maxBytes  int64
	log       *zap.Logger
}

// NewHandler picks the blob store from config: S3 when a bucket is
// configured, the local static directory otherwise.
func NewHandler(cfg *config.AppConfig, log *zap.Logger) (*Handler, error) {
	h := &Handler{
		maxBytes: int64(cfg.Upload.MaxSizeMB) << 20,
		log:      log,
	}

	if strings.TrimSpace(cfg.Upload.S3.Bucket) != "" {
		store, err := NewS3Store(cfg.Upload.S3)
		if err != nil {
			return nil, err
		}
		h.store = store
		return h, nil
	}

	h.staticDir = cfg.Upload.StaticDir
	h.store = NewDiskStore(cfg.Upload.StaticDir, cfg.Upload.PublicURL)
	return h, nil
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.POST("/upload", adminMW, h.upload)
}

// RegisterStatic exposes locally stored objects. No-op when backed by S3.
func (h *Handler) RegisterStatic(rg *gin.RouterGroup) {
	if h.staticDir == "" {
		return
	}
	rg.GET("/static/:type/:name", h.serveStatic)
}

// upload stores every acceptable file from the multipart form and returns
// their public URLs. Files that are too large, of the wrong kind, or that
// fail to store are skipped rather than failing the whole batch.
func (h *Handler) upload(c *gin.Context) {
	mediaType := strings.TrimSpace(c.PostForm("mediaType"))
	if mediaType == "" {
		mediaType = strings.TrimSpace(c.PostForm("media_type"))
	}
	if mediaType == "" {
		mediaType = MediaTypeImages
	}
	if mediaType != MediaTypeImages && mediaType != MediaTypeVideos {
		response.BadRequest(c, "mediaType must be images or videos")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "multipart form is required")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		response.BadRequest(c, "files are required")
		return
	}

	wantPrefix := "image/"
	if mediaType == MediaTypeVideos {
		wantPrefix = "video/"
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > h.maxBytes {
			h.log.Warn("upload skipped: file too large",
				zap.String("name", fh.Filename), zap.Int64("size", fh.Size))
			continue
		}
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, wantPrefix) {
			h.log.Warn("upload skipped: content type mismatch",
				zap.String("name", fh.Filename), zap.String("content_type", contentType))
			continue
		}

		f, err := fh.Open()
		if err != nil {
			h.log.Warn("upload skipped: open failed", zap.String("name", fh.Filename), zap.Error(err))
			continue
		}
		payload, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
		f.Close()
		if err != nil || int64(len(payload)) > h.maxBytes {
			h.log.Warn("upload skipped: read failed", zap.String("name", fh.Filename))
			continue
		}

		key := buildObjectKey(fh.Filename, mediaType)
		url, err := h.store.Put(c.Request.Context(), key, contentType, payload)
		if err != nil {
			h.log.Warn("upload skipped: store failed", zap.String("key", key), zap.Error(err))
			continue
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

func (h *Handler) serveStatic(c *gin.Context) {
	typ := safeSegment(c.Param("type"))
	name := safeSegment(c.Param("name"))
	if typ == "" || name == "" {
		response.NotFound(c)
		return
	}

	path := filepath.Join(h.staticDir, typ, name)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.File(path)
}

func buildObjectKey(filename, mediaType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || strings.ContainsAny(ext, "/\\") {
		if mediaType == MediaTypeVideos {
			ext = ".mp4"
		} else {
			ext = ".png"
		}
	}
	return fmt.Sprintf("projects/%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

func safeSegment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return ""
	}
	if strings.ContainsAny(s, "/\\") || strings.Contains(s, "..") {
		return ""
	}
	return s
}
