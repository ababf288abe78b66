// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"courier/internal/ai"
	"courier/internal/config"
	httptransport "courier/internal/http"
	"courier/internal/maps"
	"courier/internal/modules/category"
	"courier/internal/modules/estimate"
	"courier/internal/modules/fuelprice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer gemini.Close()

	distanceSvc, err := maps.NewDistanceService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal("maps init", zap.Error(err))
	}

	priceStore, cleanup, err := newPriceStore(ctx, cfg)
	if err != nil {
		logger.Fatal("fuel price store init", zap.Error(err))
	}
	defer cleanup()

	fuelSvc := fuelprice.NewService(priceStore, gemini, logger)
	categorySvc := category.NewService(gemini, logger)
	estimateSvc := estimate.NewService(distanceSvc, categorySvc, fuelSvc, logger)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Estimate: estimateSvc,
		Log:      logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}

// newPriceStore builds the configured fuel price store. The returned
// cleanup is a no-op for the file store.
func newPriceStore(ctx context.Context, cfg config.Config) (fuelprice.Store, func(), error) {
	switch cfg.FuelPrice.Driver {
	case "sqlite":
		store, err := fuelprice.NewSQLiteStore(ctx, cfg.FuelPrice.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return fuelprice.NewFileStore(cfg.FuelPrice.Path), func() {}, nil
	}
}
