package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/domain/models"
	"github.com/guttosm/tradelens/internal/extraction"
	"github.com/guttosm/tradelens/internal/ocr"
	"github.com/guttosm/tradelens/internal/service"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	// Shutdown quickly with short timeout and no-op cleanup
	_, cancel := context.WithCancel(context.Background())
	go func() {
		// trigger gracefulShutdown select by simulating signal via closing after a brief delay
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	// We cannot send OS signals easily here; instead, directly call Shutdown to simulate graceful flow.
	// Verify it doesn't panic and completes.
	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	// Use a server that responds immediately
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		ctx := context.Background()
		gracefulShutdown(ctx, srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	// Send SIGTERM to current process
	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
		// success
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

type fakeScreens struct {
	err  error
	seen []byte
}

func (f *fakeScreens) Extract(ctx context.Context, img []byte, onProgress ocr.ProgressFunc) (extraction.Result, error) {
	f.seen = img
	if onProgress != nil {
		onProgress(100)
	}
	if f.err != nil {
		return extraction.Result{}, f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return extraction.Result{}, errors.New("expected a deadline")
	}
	return extraction.Result{Symbol: "GBPUSD", Direction: models.DirectionShort}, nil
}

func (f *fakeScreens) ParseText(raw string) extraction.Result {
	return extraction.New().Extract(raw)
}

func TestRunExtractImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, []byte("img"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	svc := &fakeScreens{}
	var out bytes.Buffer
	if err := runExtractImage(context.Background(), svc, path, time.Second, &out); err != nil {
		t.Fatalf("runExtractImage: %v", err)
	}
	if string(svc.seen) != "img" {
		t.Fatalf("image bytes not forwarded: %q", svc.seen)
	}
	var resp dto.ExtractResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Extracted.Symbol != "GBPUSD" || resp.Draft == nil || resp.Draft.Direction != "short" {
		t.Fatalf("unexpected output: %s", out.String())
	}

	failing := &fakeScreens{err: service.ErrExtractionFailed}
	if err := runExtractImage(context.Background(), failing, path, time.Second, &out); !errors.Is(err, service.ErrExtractionFailed) {
		t.Fatalf("want ErrExtractionFailed, got %v", err)
	}
	if err := runExtractImage(context.Background(), svc, filepath.Join(t.TempDir(), "none.png"), 0, &out); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRunParse(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("EURUSD BUY 0.5\n1.08450 1.08500")
	if err := runParse(&fakeScreens{}, in, &out); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	var resp dto.ExtractResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Extracted.Symbol != "EURUSD" || resp.Extracted.Direction != models.DirectionLong {
		t.Fatalf("unexpected output: %s", out.String())
	}
	if resp.Draft.Symbol != "EURUSD" || resp.Draft.Status != "open" {
		t.Fatalf("draft not overlaid: %+v", resp.Draft)
	}
}
