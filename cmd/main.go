package main

//
//  @title           stockticker API
//  @version         1.0
//  @description     Records stock transactions and reports average traded prices per ticker symbol.
//  @termsOfService  https://github.com/guttosm/stockticker
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockticker
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stockticker
//  @tag.description Record transactions and query stock values
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/stockticker/config"
	_ "github.com/guttosm/stockticker/docs" // swagger docs
	"github.com/guttosm/stockticker/internal/app"
	"github.com/guttosm/stockticker/internal/cache"
	"github.com/guttosm/stockticker/internal/ingestion"
	"github.com/guttosm/stockticker/internal/logger"
	"github.com/guttosm/stockticker/internal/storage"
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
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
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
	defer signal.Stop(quit)

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

// runImport migrates the store and loads every CSV file in dir.
// The value cache is invalidated for imported symbols when REDIS_ENABLED is set.
func runImport(ctx context.Context, cfg config.Config, db *sql.DB, dir string, parallel int) error {
	if err := storage.Migrate(db); err != nil {
		return err
	}

	var vc cache.ValueCache
	if cfg.Redis.Enabled {
		client, err := app.InitRedis(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		vc = cache.NewRedisValueCache(client, cfg.Redis.TTL)
	}

	return ingestion.ProcessDirectory(ctx, dir, db, parallel, vc)
}

// main is the entry point of the stockticker application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API (default).
//   - import: Loads every .csv transaction file from --dir and exits.
//
// Flags:
//   - --mode:     Execution mode ("api" or "import"). Default: "api".
//   - --dir:      Directory containing .csv input files. Default: "./data/input".
//   - --parallel: Files imported concurrently (0=auto up to CPU, max 8).
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or import")
	dir := flag.String("dir", "./data/input", "Directory with .csv transaction files")
	parallel := flag.Int("parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 8)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "import":
		logger.L().Info().Str("dir", *dir).Msg("running import")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := runImport(ctx, config.AppConfig, db, *dir, *parallel); err != nil {
			logger.L().Error().Err(err).Msg("import failed")
			_ = db.Close()
			os.Exit(1)
		}
		logger.L().Info().Msg("import completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
