// Package api exposes the fleet maintenance service over HTTP.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/RavDas/fleet-management-backend/internal/analytics"
	"github.com/RavDas/fleet-management-backend/internal/crew"
	"github.com/RavDas/fleet-management-backend/internal/inventory"
	"github.com/RavDas/fleet-management-backend/internal/maintenance"
	"github.com/RavDas/fleet-management-backend/internal/schedule"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Services bundles everything the HTTP layer serves.
type Services struct {
	Maintenance *maintenance.Service
	Reconciler  *maintenance.Reconciler
	Analytics   *analytics.Aggregator
	Crew        *crew.Service
	Inventory   *inventory.Service
	Schedules   *schedule.Service
}

// StartOpts holds configuration for the API server.
type StartOpts struct {
	Services Services
	Port     int
	Log      *logrus.Logger
	Out      io.Writer
}

// NewRouter builds the gin engine with all routes and middleware registered.
func NewRouter(svcs Services, log *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLog(log))
	registerRoutes(router, svcs)
	return router
}

// Start launches the API server. It blocks until ctx is cancelled, then shuts
// down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.Services.Maintenance == nil {
		return fmt.Errorf("api: services are required")
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
	}

	router := NewRouter(opts.Services, opts.Log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "API listening at http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}
