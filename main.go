package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/config"
	"github.com/salesboard/backend/internal/controllers"
	"github.com/salesboard/backend/internal/logging"
	"github.com/salesboard/backend/internal/router"
	"github.com/salesboard/backend/internal/store"
)

//	@title			Sales Dashboard
//	@version		1.0
//	@description	Transactions of a product store with sales statistics, a price histogram and a category breakdown per month.

//	@BasePath	/

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)
	logging.Setup(cfg, os.Stdout)

	s, err := store.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer s.Close()

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(cfg, controllers.Controller{Store: s}, r.Group("/"))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("Server is running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Server")
		os.Exit(1)
	}

	log.Info().Msg("Server stopped gracefully")
}
