// Package health reports whether the database is reachable, over gRPC
// (grpc.health.v1) and as a plain HTTP endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name clients pass in HealthCheckRequest.Service.
const Service = "marketplace.api"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Checker struct {
	db       Pinger
	srv      *grpchealth.Server
	interval time.Duration
	log      *zap.Logger
}

func NewChecker(db Pinger, interval time.Duration, log *zap.Logger) *Checker {
	srv := grpchealth.NewServer()
	srv.SetServingStatus(Service, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Checker{db: db, srv: srv, interval: interval, log: log}
}

// Check pings the database once and publishes the result.
func (h *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := h.db.Ping(ctx)
	status := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.srv.SetServingStatus("", status)
	h.srv.SetServingStatus(Service, status)
	return err
}

// Run re-checks every interval until ctx is done, then marks everything
// NOT_SERVING.
func (h *Checker) Run(ctx context.Context) {
	t := time.NewTicker(h.interval)
	defer t.Stop()

	if err := h.Check(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
	}
	for {
		select {
		case <-ctx.Done():
			h.srv.Shutdown()
			return
		case <-t.C:
			if err := h.Check(ctx); err != nil {
				h.log.Warn("database ping failed", zap.Error(err))
			}
		}
	}
}

// Register exposes the checker on a gRPC server.
func (h *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.srv)
}

// HTTPHandler answers 200 when the database responds and 503 otherwise.
//
// @Summary  Database reachability
// @Tags     health
// @Produce  json
// @Success  200 {object} object
// @Failure  503 {object} object
// @Router   /healthz [get]
func (h *Checker) HTTPHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
