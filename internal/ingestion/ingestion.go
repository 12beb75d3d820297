package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/extraction"
	"github.com/guttosm/tradelens/internal/logger"
	"github.com/guttosm/tradelens/internal/ocr"
	"github.com/guttosm/tradelens/internal/service"
)

const maxParallel = 8

// ErrIncomplete marks a result that lacks a field required to store it.
var ErrIncomplete = errors.New("extraction incomplete")

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// Options tunes ProcessDirectory. The zero value extracts without storing.
type Options struct {
	Parallel   int           // 0 means min(NumCPU, 8)
	OCRTimeout time.Duration // per file; 0 disables it

	// Trades, when set, receives one open trade per complete result.
	Trades   service.TradeService
	Location *time.Location
	Now      func() time.Time
}

// Report is the outcome for one file.
type Report struct {
	File      string            `json:"file"`
	Extracted extraction.Result `json:"extracted"`
	Fields    []string          `json:"fields"`
	TradeID   *uuid.UUID        `json:"trade_id,omitempty"`
	Error     string            `json:"error,omitempty"`
	Err       error             `json:"-"`
}

func (r *Report) fail(err error) {
	r.Err = err
	r.Error = err.Error()
}

// ProcessDirectory extracts every image in dir.
//
// Behavior:
//   - Images are picked by extension and confirmed by content sniffing.
//   - Files are processed concurrently, bounded by opts.Parallel.
//   - A failing file is reported and does not stop the others.
//   - With opts.Trades set, complete results are stored as open trades.
//
// Returns:
//   - []Report: one entry per image, in name order.
//   - error: only when dir cannot be read or ctx is done.
func ProcessDirectory(ctx context.Context, dir string, svc service.ScreenshotService, opts Options) ([]Report, error) {
	files, err := listImages(dir)
	if err != nil {
		return nil, err
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = min(runtime.NumCPU(), maxParallel)
	}
	log := logger.With("ingestion")
	log.Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", parallel).Bool("persist", opts.Trades != nil).Msg("ingestion start")

	reports := make([]Report, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			reports[i] = processFile(gctx, f, svc, opts)
			ev := log.Info()
			if reports[i].Err != nil {
				ev = log.Warn().Err(reports[i].Err)
			}
			ev.Int("idx", i+1).Int("total", len(files)).Str("file", filepath.Base(f)).
				Strs("fields", reports[i].Fields).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	if err := ctx.Err(); err != nil {
		return reports, err
	}
	return reports, nil
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func processFile(ctx context.Context, path string, svc service.ScreenshotService, opts Options) Report {
	rep := Report{File: path, Fields: []string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		rep.fail(err)
		return rep
	}
	if _, err := ocr.DetectImage(data); err != nil {
		rep.fail(err)
		return rep
	}

	if opts.OCRTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.OCRTimeout)
		defer cancel()
	}
	res, err := svc.Extract(ctx, data, nil)
	if err != nil {
		rep.fail(err)
		return rep
	}
	rep.Extracted = res
	if fields := res.Fields(); fields != nil {
		rep.Fields = fields
	}

	if opts.Trades == nil {
		return rep
	}
	id, err := persist(ctx, path, res, opts)
	if err != nil {
		rep.fail(err)
		return rep
	}
	rep.TradeID = &id
	return rep
}

// Complete reports whether res carries everything an open trade needs.
func Complete(res extraction.Result) bool {
	return res.Symbol != "" && res.Direction != "" && res.LotSize != nil &&
		res.EntryPrice != nil && res.EntryTimestamp != ""
}

func persist(ctx context.Context, path string, res extraction.Result, opts Options) (uuid.UUID, error) {
	if !Complete(res) {
		return uuid.Nil, ErrIncomplete
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	draft := dto.NewDraft(now().In(loc))
	draft.Overlay(res)
	draft.Notes = "Imported from " + filepath.Base(path)
	trade, err := draft.ToTrade(loc)
	if err != nil {
		return uuid.Nil, err
	}
	if err := opts.Trades.Create(ctx, &trade); err != nil {
		return uuid.Nil, fmt.Errorf("store trade: %w", err)
	}
	return trade.ID, nil
}
