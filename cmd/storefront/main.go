package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	cartapp "github.com/leng404/gymshop/internal/cart/app"
	cartadapter "github.com/leng404/gymshop/internal/cart/infra/adapter"
	catalogapp "github.com/leng404/gymshop/internal/catalog/app"
	"github.com/leng404/gymshop/internal/catalog/infra/httpfetch"
	checkoutapp "github.com/leng404/gymshop/internal/checkout/app"
	checkoutadapter "github.com/leng404/gymshop/internal/checkout/infra/adapter"
	"github.com/leng404/gymshop/internal/storefront"
	"github.com/leng404/gymshop/pkg/config"
	"github.com/leng404/gymshop/pkg/logger"
	"github.com/leng404/gymshop/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	store := catalogapp.NewStore()
	fetcher := httpfetch.NewFetcher(cfg.CatalogURL, &http.Client{Timeout: cfg.FetchTimeout})

	// Cart
	ledger := cartapp.NewLedger(cartadapter.NewCatalogStoreReader(store))

	// Checkout
	notifier := checkoutadapter.NewSlogNotifier(log)
	checkoutSvc := checkoutapp.NewService(checkoutadapter.NewLedgerCart(ledger), notifier)

	ctrl := storefront.NewController(log, store, ledger, checkoutSvc, notifier)
	handler := storefront.NewHandler(ctrl, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// A failed load degrades the grid; the server still comes up.
	g.Go(func() error {
		loadCtx, loadCancel := context.WithTimeout(gctx, cfg.FetchTimeout)
		defer loadCancel()
		if err := ctrl.LoadCatalog(loadCtx, fetcher); err != nil {
			log.Warn("serving degraded storefront", slog.Any("err", err))
		}
		return nil
	})

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			cancel()
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		return server.Shutdown(stopCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("storefront exited with error", slog.Any("err", err))
	}
	log.Info("bye")
}
