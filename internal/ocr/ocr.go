// Package ocr wraps the optical character recognition engine that turns a
// screenshot into raw text.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrEmptyImage is returned for a zero-length payload.
	ErrEmptyImage = errors.New("empty image")
	// ErrUnsupportedImage is returned when the payload is not a raster image
	// the engine can read.
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// Recognizer turns image bytes into text. Implementations report coarse
// progress through onProgress, always before returning.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, onProgress ProgressFunc) (string, error)
}

// SupportedTypes lists the MIME types accepted by Tesseract.
var SupportedTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/bmp",
	"image/tiff",
	"image/webp",
}

// DetectImage sniffs the payload and returns its MIME type when it is one
// of SupportedTypes.
func DetectImage(image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}
	mt := mimetype.Detect(image)
	if !mimetype.EqualsAny(mt.String(), SupportedTypes...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}
	return mt.String(), nil
}

// ImageExtension returns the canonical file extension for a MIME type
// reported by DetectImage, e.g. ".png".
func ImageExtension(mime string) string {
	if mt := mimetype.Lookup(mime); mt != nil {
		return mt.Extension()
	}
	return ""
}

// Config controls the tesseract invocation.
type Config struct {
	Binary      string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	PSM         int    // page segmentation mode; 0 keeps the engine default
	OEM         int    // engine mode; 0 keeps the engine default
	TessdataDir string
}

// Tesseract is a Recognizer backed by the tesseract CLI. The image is fed
// through stdin, so nothing touches the filesystem.
type Tesseract struct {
	cfg    Config
	runner Runner
}

// NewTesseract builds a Tesseract recognizer with defaults applied.
func NewTesseract(cfg Config) *Tesseract {
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &Tesseract{cfg: cfg, runner: execRunner{}}
}

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-=]{3,}\s*$`)

// Recognize runs the engine over image.
//
// Progress milestones: 0 on start, 10 once the image is validated, 90 when
// the engine returns, 100 when the text is ready.
func (t *Tesseract) Recognize(ctx context.Context, image []byte, onProgress ProgressFunc) (string, error) {
	progress := Monotonic(onProgress)
	progress(0)

	if _, err := DetectImage(image); err != nil {
		return "", err
	}
	progress(10)

	out, errb, err := t.runner.Run(ctx, bytes.NewReader(image), t.cfg.Binary, t.args()...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("tesseract: %w", ctxErr)
		}
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(truncate(string(errb), 512)))
	}
	progress(90)

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	progress(100)
	return txt, nil
}

// args builds: tesseract stdin stdout -l <lang> [--psm N] [--oem N] [--tessdata-dir D]
func (t *Tesseract) args() []string {
	args := []string{"stdin", "stdout", "-l", t.cfg.Lang}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(t.cfg.OEM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	return args
}
