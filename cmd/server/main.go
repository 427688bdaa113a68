package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/aprksy/jsonsvc/internal/finance"
	"github.com/aprksy/jsonsvc/internal/hr"
	httpapi "github.com/aprksy/jsonsvc/internal/http"
	"github.com/aprksy/jsonsvc/internal/it"
	"github.com/aprksy/jsonsvc/internal/orders"
	"github.com/aprksy/jsonsvc/internal/platform/config"
	"github.com/aprksy/jsonsvc/internal/platform/httpserver"
	"github.com/aprksy/jsonsvc/internal/platform/logger"
	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/products"
	"github.com/aprksy/jsonsvc/internal/storage"
	"github.com/aprksy/jsonsvc/internal/users"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal domain packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Error("data dir unavailable", "dir", cfg.DataDir, "error", err.Error())
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	usersSvc := users.NewService(store, users.WithMetrics(m))
	productsSvc := products.NewService(store, products.WithMetrics(m))
	ordersSvc := orders.NewService(store, orders.WithMetrics(m))
	financeSvc := finance.NewService(store, finance.WithMetrics(m))
	hrSvc := hr.NewService(store, hr.WithMetrics(m))
	itSvc := it.NewService(store, it.WithMetrics(m))

	router := httpapi.NewRouter(log, m, registry,
		users.NewHandler(usersSvc, log),
		products.NewHandler(productsSvc, log),
		orders.NewHandler(ordersSvc, log),
		finance.NewHandler(financeSvc, log, cfg.FinanceAPIKeys),
		hr.NewHandler(hrSvc, log, cfg.HRAPIKeys),
		it.NewHandler(itSvc, log, cfg.ITAPIKeys),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("server stopped")
}
