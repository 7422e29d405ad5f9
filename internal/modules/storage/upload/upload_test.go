package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/config"
	"go.uber.org/zap"
)

type testFile struct {
	name        string
	contentType string
	size        int
}

func multipartBody(t *testing.T, mediaType string, files []testFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if mediaType != "" {
		if err := w.WriteField("mediaType", mediaType); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		hdr.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(bytes.Repeat([]byte{0xAB}, f.size)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{}
	cfg.Upload.MaxSizeMB = 25
	cfg.Upload.StaticDir = t.TempDir()

	h, err := NewHandler(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })
	return r
}

func doUpload(t *testing.T, r *gin.Engine, body *bytes.Buffer, contentType string) (int, []string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var resp struct {
		URLs []string `json:"urls"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, resp.URLs
}

func TestUploadAcceptsWithinSizeCap(t *testing.T) {
	r := testRouter(t)
	body, ct := multipartBody(t, "images", []testFile{
		{name: "shot.png", contentType: "image/png", size: 10 << 20},
	})
	code, urls := doUpload(t, r, body, ct)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(urls) != 1 {
		t.Fatalf("urls = %v, want one entry", urls)
	}
	if !strings.Contains(urls[0], "/static/projects/") || !strings.HasSuffix(urls[0], ".png") {
		t.Errorf("unexpected url shape: %q", urls[0])
	}
}

func TestUploadOmitsOversizedFile(t *testing.T) {
	r := testRouter(t)
	body, ct := multipartBody(t, "images", []testFile{
		{name: "huge.png", contentType: "image/png", size: 26 << 20},
		{name: "ok.jpg", contentType: "image/jpeg", size: 1 << 20},
	})
	code, urls := doUpload(t, r, body, ct)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(urls) != 1 || !strings.HasSuffix(urls[0], ".jpg") {
		t.Errorf("expected only the small jpg to survive, got %v", urls)
	}
}

func TestUploadOmitsMismatchedContentType(t *testing.T) {
	r := testRouter(t)
	body, ct := multipartBody(t, "videos", []testFile{
		{name: "clip.mp4", contentType: "video/mp4", size: 1024},
		{name: "sneaky.png", contentType: "image/png", size: 1024},
	})
	code, urls := doUpload(t, r, body, ct)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(urls) != 1 || !strings.HasSuffix(urls[0], ".mp4") {
		t.Errorf("expected only the mp4 to survive, got %v", urls)
	}
}

func TestUploadRejectsUnknownMediaType(t *testing.T) {
	r := testRouter(t)
	body, ct := multipartBody(t, "documents", []testFile{
		{name: "a.pdf", contentType: "application/pdf", size: 1024},
	})
	code, _ := doUpload(t, r, body, ct)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestUploadRequiresFiles(t *testing.T) {
	r := testRouter(t)
	body, ct := multipartBody(t, "images", nil)
	code, _ := doUpload(t, r, body, ct)
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}
