package main

//
//  @title           tradelens API
//  @version         1.0
//  @description     Trade journal with MT5 screenshot extraction.
//  @termsOfService  https://github.com/guttosm/tradelens
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tradelens
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trades
//  @tag.description Trade journal CRUD and dashboard stats
//
//  @tag.name        screenshots
//  @tag.description Images attached to a trade
//
//  @tag.name        extract
//  @tag.description Screenshot OCR and text parsing into trade fields
//
//  @tag.name        health
//  @tag.description Liveness and readiness checks

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/tradelens/config"
	_ "github.com/guttosm/tradelens/docs" // swagger docs
	"github.com/guttosm/tradelens/internal/app"
	"github.com/guttosm/tradelens/internal/domain/dto"
	"github.com/guttosm/tradelens/internal/ingestion"
	"github.com/guttosm/tradelens/internal/logger"
	"github.com/guttosm/tradelens/internal/service"
	"github.com/guttosm/tradelens/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second, // OCR requests can be slow
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runExtractImage recognizes one screenshot and prints the extracted fields
// together with the draft form they produce.
func runExtractImage(ctx context.Context, svc service.ScreenshotService, path string, timeout time.Duration, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	res, err := svc.Extract(ctx, data, func(p int) {
		logger.L().Debug().Int("progress", p).Msg("ocr")
	})
	if err != nil {
		return err
	}
	return writeJSON(out, dto.NewExtractResponse(res, dto.NewDraft(time.Now())))
}

// runParse parses already-recognized text read from in.
func runParse(svc service.ScreenshotService, in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	return writeJSON(out, dto.NewExtractResponse(svc.ParseText(string(raw)), dto.NewDraft(time.Now())))
}

// main is the entry point of the tradelens application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API (default).
//   - extract: Runs OCR on --image, or on every image in --dir, and prints JSON.
//   - parse:   Parses recognized text from --text or stdin and prints JSON.
//   - migrate: Applies pending database migrations and exits.
//
// Flags:
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
//   - --migrate:  Apply migrations before serving in api mode.
//   - --parallel: Files processed concurrently in extract --dir (0=auto).
//   - --persist:  Store complete results from extract --dir as open trades.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api, extract, parse or migrate")
	image := flag.String("image", "", "Screenshot to extract (extract mode)")
	dir := flag.String("dir", "", "Directory of screenshots to extract (extract mode)")
	text := flag.String("text", "", "File with recognized text; stdin when empty (parse mode)")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto up to CPU, max 8)")
	persist := flag.Bool("persist", false, "Store complete extractions as open trades (extract --dir)")
	migrate := flag.Bool("migrate", false, "Apply migrations before starting the API")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	cfg := config.AppConfig

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")
		if *migrate {
			migrateDB(ctx, cfg)
		}

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "migrate":
		migrateDB(ctx, cfg)

	case "extract":
		svc, err := app.NewScreenshotService(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("extractor init error")
		}
		switch {
		case *image != "":
			if err := runExtractImage(ctx, svc, *image, cfg.OCR.Timeout, os.Stdout); err != nil {
				logger.L().Fatal().Err(err).Str("image", *image).Msg("extraction failed")
			}
		case *dir != "":
			opts := ingestion.Options{Parallel: *parallel, OCRTimeout: cfg.OCR.Timeout, Location: cfg.Location()}
			if *persist {
				db, err := app.InitPostgres(cfg)
				if err != nil {
					logger.L().Fatal().Err(err).Msg("db connect error")
				}
				defer func() { _ = db.Close() }()
				opts.Trades = service.NewTradeService(storage.NewTradesRepository(db), opts.Location)
			}
			reports, err := ingestion.ProcessDirectory(ctx, *dir, svc, opts)
			if err != nil {
				logger.L().Fatal().Err(err).Msg("batch extraction failed")
			}
			if err := writeJSON(os.Stdout, reports); err != nil {
				logger.L().Fatal().Err(err).Msg("write output")
			}
		default:
			fmt.Fprintln(os.Stderr, "extract mode needs --image or --dir")
			os.Exit(2)
		}

	case "parse":
		svc, err := app.NewScreenshotService(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("extractor init error")
		}
		in := io.Reader(os.Stdin)
		if *text != "" {
			f, err := os.Open(*text)
			if err != nil {
				logger.L().Fatal().Err(err).Msg("open text file")
			}
			defer func() { _ = f.Close() }()
			in = f
		}
		if err := runParse(svc, in, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("parse failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func migrateDB(ctx context.Context, cfg config.Config) {
	db, err := app.InitPostgres(cfg)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("db connect error")
	}
	defer func() { _ = db.Close() }()
	if err := app.Migrate(ctx, db); err != nil {
		logger.L().Fatal().Err(err).Msg("migration failed")
	}
	logger.L().Info().Msg("migrations applied")
}
