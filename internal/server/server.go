// Package server owns the HTTP server lifecycle: open the database at
// startup, run pending migrations, serve until a shutdown signal, then
// drain in-flight requests and close the pool.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/controllers"
	"github.com/shashiranjanraj/orderdesk/app/routes"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"github.com/shashiranjanraj/orderdesk/pkg/database"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
	"github.com/shashiranjanraj/orderdesk/pkg/middleware"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"
	"github.com/shashiranjanraj/orderdesk/pkg/reqid"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start boots the application and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	db, err := database.Open(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck

	// Schema sync on boot: apply any migrations not yet run.
	if err := migration.New(db).Run(); err != nil {
		return err
	}

	// The cache is an optimisation, not a dependency; serve without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, serving without it", "error", err)
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           Handler(db),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("orderdesk listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Handler builds the full HTTP handler: middleware stack, infrastructure
// endpoints, and the API routes wired to services constructed over db.
func Handler(db *gorm.DB) http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — set CORS headers
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))

	// Prometheus /metrics endpoint.
	r.HandleFunc("/metrics", metrics.Handler())

	products := controllers.NewProductController(services.NewProductService(db))
	orders := controllers.NewOrderController(services.NewOrderService(db))
	routes.RegisterAPI(r, products, orders)

	return r.Handler()
}
