package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/tradelens/internal/extraction"
	"github.com/guttosm/tradelens/internal/logger"
	"github.com/guttosm/tradelens/internal/ocr"
)

// ErrExtractionFailed is returned when the OCR step fails. The text parser
// is never reached in that case.
var ErrExtractionFailed = errors.New("screenshot extraction failed")

// ScreenshotService turns MT5 screenshots into structured trade fields.
type ScreenshotService interface {
	// Extract recognizes the image once and parses the resulting text once.
	// Deadlines come from ctx; there is no retry.
	Extract(ctx context.Context, image []byte, onProgress ocr.ProgressFunc) (extraction.Result, error)
	// ParseText runs only the parser, for text recognized elsewhere.
	ParseText(raw string) extraction.Result
}

type screenshotService struct {
	recognizer ocr.Recognizer
	extractor  *extraction.Extractor
}

func NewScreenshotService(recognizer ocr.Recognizer, extractor *extraction.Extractor) ScreenshotService {
	if extractor == nil {
		extractor = extraction.New()
	}
	return &screenshotService{recognizer: recognizer, extractor: extractor}
}

func (s *screenshotService) Extract(ctx context.Context, image []byte, onProgress ocr.ProgressFunc) (extraction.Result, error) {
	progress := ocr.Monotonic(onProgress)
	text, err := s.recognizer.Recognize(ctx, image, progress)
	if err != nil {
		logger.L().Warn().Err(err).Int("bytes", len(image)).Msg("ocr failed")
		return extraction.Result{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	return s.ParseText(text), nil
}

func (s *screenshotService) ParseText(raw string) extraction.Result {
	log := logger.With("extraction")
	normalized := extraction.Normalize(raw)
	log.Debug().Int("raw_len", len(raw)).Str("normalized", normalized).Msg("parsing ocr text")

	res := s.extractor.ExtractNormalized(normalized)
	log.Info().Strs("fields", res.Fields()).Str("symbol", res.Symbol).Msg("extraction complete")
	return res
}
