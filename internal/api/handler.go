package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/tradelens/internal/middleware"
	"github.com/guttosm/tradelens/internal/service"
	"github.com/guttosm/tradelens/internal/storage"
)

// Upload limits.
const (
	DefaultMaxUploadBytes = 10 << 20
	MaxScreenshotsPerCall = 10
)

// Options tunes request handling.
type Options struct {
	// OCRTimeout bounds a single screenshot extraction; 0 means only the
	// request deadline applies.
	OCRTimeout     time.Duration
	MaxUploadBytes int64
	// Location is used for form dates without a zone and for period stats.
	Location *time.Location
}

// Handler provides the HTTP handlers of the trade journal.
//
// Responsibilities:
//   - Validate path, query and body input
//   - Call the trade and screenshot services
//   - Map service errors to status codes and dto.ErrorResponse bodies
type Handler struct {
	trades      service.TradeService
	screenshots service.ScreenshotService
	uploads     *storage.FileStore
	opts        Options
	now         func() time.Time
}

// NewHandler constructs a Handler. uploads may be nil, in which case the
// screenshot upload endpoints answer 503.
func NewHandler(trades service.TradeService, screenshots service.ScreenshotService, uploads *storage.FileStore, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Handler{
		trades:      trades,
		screenshots: screenshots,
		uploads:     uploads,
		opts:        opts,
		now:         time.Now,
	}
}

// Uploads returns the file store backing /uploads, or nil.
func (h *Handler) Uploads() *storage.FileStore { return h.uploads }

func (h *Handler) clock() time.Time { return h.now().In(h.opts.Location) }

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "Invalid trade id", err)
		return uuid.Nil, false
	}
	return id, true
}

// fail maps service errors to HTTP responses; message is used for
// unexpected failures.
func fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrTradeNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "Trade not found", err)
	case errors.Is(err, service.ErrScreenshotNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "Screenshot not found", err)
	case errors.Is(err, service.ErrInvalidTrade):
		middleware.AbortWithError(c, http.StatusBadRequest, message, err)
	case errors.Is(err, context.DeadlineExceeded):
		middleware.AbortWithError(c, http.StatusGatewayTimeout, "Request timed out", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, message, err)
	}
}
