// Package main provides the entry point for the sports-day portal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	authRouter "github.com/festy23/sportsday/internal/auth/router"
	bracketRouter "github.com/festy23/sportsday/internal/bracket/router"
	"github.com/festy23/sportsday/internal/config"
	dbConfig "github.com/festy23/sportsday/internal/database/config"
	"github.com/festy23/sportsday/internal/database/database"
	"github.com/festy23/sportsday/internal/database/migrate"
	"github.com/festy23/sportsday/internal/flash"
	"github.com/festy23/sportsday/internal/health"
	"github.com/festy23/sportsday/internal/middleware"
	"github.com/festy23/sportsday/internal/session"
	sessionRepo "github.com/festy23/sportsday/internal/session/repository"
	statisticsRouter "github.com/festy23/sportsday/internal/statistics/router"
	studentRouter "github.com/festy23/sportsday/internal/student/router"
	teamRouter "github.com/festy23/sportsday/internal/team/router"
	viewerRouter "github.com/festy23/sportsday/internal/viewer/router"
	"github.com/festy23/sportsday/internal/web"
	"github.com/festy23/sportsday/pkg/logger"
)

func main() {
	config.LoadDotEnv()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("server stopped with error", "error", err)
		_ = sugar.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	dbCfg := dbConfig.LoadConfigFromEnv()
	retryCfg := dbConfig.LoadRetryConfigFromEnv(dbCfg.Driver)
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		sugar.Warnw("database connect failed, retrying",
			"attempt", attempt, "delay", delay, "error", err)
	}

	db, err := database.Open(ctx, dbCfg, retryCfg)
	if err != nil {
		return err
	}
	defer func() {
		if stats, err := database.GetStats(db); err == nil {
			sugar.Infow("closing session store",
				"open", stats.OpenConnections, "wait_count", stats.WaitCount)
		}
		if err := database.Close(db); err != nil {
			sugar.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, dbCfg.Driver); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	sugar.Infow("session store ready", "driver", dbCfg.Driver)

	sessions := session.NewManager(cfg.Session, sessionRepo.New(db), sugar)
	api := apiclient.New(cfg.API, sugar)

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	render := web.NewRenderer(flash.New(cfg.UI.FlashTTL), sugar)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Recovery(sugar), middleware.Logger(sugar))

	r.GET("/health", health.New(health.SessionStore(db), sugar).Check)

	pages := r.Group("", middleware.Session(sessions))
	viewerRouter.RegisterRoutes(pages, api, render, sugar)
	authRouter.RegisterRoutes(pages, api, render, sugar)

	admin := pages.Group("", middleware.RequireAdmin())
	statisticsRouter.RegisterRoutes(admin, api, render, sugar)
	studentRouter.RegisterRoutes(admin, api, render, sugar)
	brackets := bracketRouter.RegisterRoutes(admin, api, render, sugar)
	teamRouter.RegisterRoutes(admin, api, brackets, render, cfg.UI, sugar)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		sugar.Infow("server listening", "addr", srv.Addr, "api", cfg.API.BaseURL)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	sugar.Infow("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
