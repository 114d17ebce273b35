package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtcraft/estimates/internal/auth"
	"github.com/courtcraft/estimates/internal/config"
	"github.com/courtcraft/estimates/internal/db"
	"github.com/courtcraft/estimates/internal/excel"
	httphandler "github.com/courtcraft/estimates/internal/http"
	"github.com/courtcraft/estimates/internal/http/middleware"
	"github.com/courtcraft/estimates/internal/logger"
	"github.com/courtcraft/estimates/internal/pdf"
	"github.com/courtcraft/estimates/internal/repository"
	"github.com/courtcraft/estimates/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	rateRepo := repository.NewRateRepository(database)
	estimateRepo := repository.NewEstimateRepository(database)
	pdfGenerator, err := pdf.NewGenerator(cfg.Proposal.CompanyName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	estimateService := service.NewEstimateService(rateRepo, estimateRepo, excel.NewGenerator(), pdfGenerator, cfg, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(estimateService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting estimates service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("estimates service stopped")
}
