package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/store"
)

func main() {
	config.Load()

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)
	mines.Log = logger

	if err := run(logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	storeCfg, err := config.NewStore()
	if err != nil {
		return fmt.Errorf("failed to read store config: %w", err)
	}
	st, err := store.Open(ctx, storeCfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", storeCfg.Driver, err)
	}
	defer st.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("failed to read jwt config: %w", err)
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return fmt.Errorf("failed to read cookies config: %w", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("failed to read ws config: %w", err)
	}

	rateLimit, err := config.NewRateLimit()
	if err != nil {
		return fmt.Errorf("failed to read rate limit config: %w", err)
	}

	app := &application{
		logger:   logger,
		sessions: newSessions(st, logger),
		cookies:  cookies,
		ws:       ws,
	}

	var router http.Handler = app.Router()
	if base := config.BasePath(); base != "" {
		router = http.StripPrefix(base, router)
	}

	port := config.Port()
	server := &http.Server{
		Addr:         port,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler: middleware.Wrap(router,
			middleware.RateLimit(logger, rateLimit),
			middleware.Logging(logger),
			middleware.Cors(config.CorsOrigins()...),
		),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(fmt.Sprintf("minesweeper server listening at http://localhost%s", port),
			slog.String("store", storeCfg.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
