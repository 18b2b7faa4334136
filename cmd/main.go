package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harshjindal13/brainly-fullStack/internal/auth"
	"github.com/harshjindal13/brainly-fullStack/internal/config"
	"github.com/harshjindal13/brainly-fullStack/internal/handlers"
	"github.com/harshjindal13/brainly-fullStack/internal/logger"
	"github.com/harshjindal13/brainly-fullStack/internal/repository"
	"github.com/harshjindal13/brainly-fullStack/internal/repository/db"
	"github.com/harshjindal13/brainly-fullStack/internal/server"
	"github.com/harshjindal13/brainly-fullStack/internal/service"

	_ "github.com/harshjindal13/brainly-fullStack/docs"
)

// @title           Brainly API
// @version         1.0
// @description     Bookmark manager with shareable public brains.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load config.yml and environment overrides
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, logger.EnvLocal).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel, cfg.Env)

	// open DB
	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, log, cfg)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
