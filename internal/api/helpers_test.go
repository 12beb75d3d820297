package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/domain/models"
	"github.com/guttosm/tradelens/internal/extraction"
	"github.com/guttosm/tradelens/internal/ocr"
	"github.com/guttosm/tradelens/internal/service"
	"github.com/guttosm/tradelens/internal/storage"
)

// mockTrades implements service.TradeService with per-method hooks.
type mockTrades struct {
	list     func(models.TradeFilter) ([]models.Trade, error)
	get      func(uuid.UUID) (*models.Trade, error)
	create   func(*models.Trade) error
	update   func(uuid.UUID, dto.TradeUpdate) (*models.Trade, error)
	del      func(uuid.UUID) error
	addShots func(uuid.UUID, []string) (*models.Trade, error)
	rmShot   func(uuid.UUID, string) (*models.Trade, error)
	stats    func(time.Time) (*models.DashboardStats, error)
}

var _ service.TradeService = (*mockTrades)(nil)

func (m *mockTrades) List(_ context.Context, f models.TradeFilter) ([]models.Trade, error) {
	return m.list(f)
}
func (m *mockTrades) Get(_ context.Context, id uuid.UUID) (*models.Trade, error) {
	return m.get(id)
}
func (m *mockTrades) Create(_ context.Context, t *models.Trade) error {
	return m.create(t)
}
func (m *mockTrades) Update(_ context.Context, id uuid.UUID, p dto.TradeUpdate) (*models.Trade, error) {
	return m.update(id, p)
}
func (m *mockTrades) Delete(_ context.Context, id uuid.UUID) error { return m.del(id) }
func (m *mockTrades) AddScreenshots(_ context.Context, id uuid.UUID, paths []string) (*models.Trade, error) {
	return m.addShots(id, paths)
}
func (m *mockTrades) RemoveScreenshot(_ context.Context, id uuid.UUID, path string) (*models.Trade, error) {
	return m.rmShot(id, path)
}
func (m *mockTrades) Stats(_ context.Context, now time.Time) (*models.DashboardStats, error) {
	return m.stats(now)
}

// mockScreens implements service.ScreenshotService.
type mockScreens struct {
	result extraction.Result
	err    error
	ctxErr error
	text   string
}

func (m *mockScreens) Extract(ctx context.Context, _ []byte, onProgress ocr.ProgressFunc) (extraction.Result, error) {
	if onProgress != nil {
		onProgress(100)
	}
	if m.ctxErr != nil {
		<-ctx.Done()
		return extraction.Result{}, m.ctxErr
	}
	return m.result, m.err
}

func (m *mockScreens) ParseText(raw string) extraction.Result {
	m.text = raw
	return extraction.New().Extract(raw)
}

var fixedNow = time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T, trades service.TradeService, screens service.ScreenshotService, uploads *storage.FileStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(trades, screens, uploads, Options{OCRTimeout: 50 * time.Millisecond, MaxUploadBytes: 1 << 20, Location: time.UTC})
	h.now = func() time.Time { return fixedNow }
	return NewRouter(h, RouterConfig{RequestTimeout: time.Second})
}

func do(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	}
	return do(r, method, path, body, "application/json")
}

type formFile struct {
	field, name string
	data        []byte
}

func multipartBody(t *testing.T, files []formFile, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("field: %v", err)
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := fw.Write(f.data); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png: %v", err)
	}
	return buf.Bytes()
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return e
}
