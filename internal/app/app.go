package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/config"
	"github.com/guttosm/tradelens/internal/api"
	"github.com/guttosm/tradelens/internal/extraction"
	"github.com/guttosm/tradelens/internal/ocr"
	"github.com/guttosm/tradelens/internal/service"
	"github.com/guttosm/tradelens/internal/storage"
)

// UploadsPrefix is the URL path stored screenshots are served under.
const UploadsPrefix = "/uploads"

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the OCR recognizer, extractor and services.
//   - Creates the upload directory.
//   - Configures the Gin router and registers health and readiness endpoints.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	screenshots, err := NewScreenshotService(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	var uploads *storage.FileStore
	if cfg.Uploads.Dir != "" {
		if uploads, err = storage.NewFileStore(cfg.Uploads.Dir, UploadsPrefix); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	loc := cfg.Location()
	repo := storage.NewTradesRepository(db)
	trades := service.NewTradeService(repo, loc)

	handler := api.NewHandler(trades, screenshots, uploads, api.Options{
		OCRTimeout:     cfg.OCR.Timeout,
		MaxUploadBytes: cfg.Uploads.MaxBytes,
		Location:       loc,
	})
	router := api.NewRouter(handler, api.RouterConfig{
		RequestTimeout:     cfg.Server.RequestTimeout,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})
	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}
	return router, cleanup, nil
}

// NewExtractor builds the text extractor from the symbol settings.
func NewExtractor(cfg config.SymbolsConfig) (*extraction.Extractor, error) {
	set := extraction.DefaultSymbols()
	var err error
	if len(cfg.Known) > 0 {
		if set, err = extraction.NewSymbolSet(cfg.Known...); err != nil {
			return nil, fmt.Errorf("KNOWN_SYMBOLS: %w", err)
		}
	}
	if len(cfg.Extra) > 0 {
		if set, err = set.With(cfg.Extra...); err != nil {
			return nil, fmt.Errorf("EXTRA_SYMBOLS: %w", err)
		}
	}
	return extraction.New(extraction.WithSymbols(set)), nil
}

// NewRecognizer builds the tesseract-backed recognizer.
func NewRecognizer(cfg config.OCRConfig) *ocr.Tesseract {
	return ocr.NewTesseract(ocr.Config{
		Binary:      cfg.Binary,
		Lang:        cfg.Lang,
		PSM:         cfg.PSM,
		OEM:         cfg.OEM,
		TessdataDir: cfg.TessdataDir,
	})
}

// NewScreenshotService wires OCR and extraction without a database, for
// the API and the offline CLI modes alike.
func NewScreenshotService(cfg config.Config) (service.ScreenshotService, error) {
	extractor, err := NewExtractor(cfg.Symbols)
	if err != nil {
		return nil, err
	}
	return service.NewScreenshotService(NewRecognizer(cfg.OCR), extractor), nil
}

