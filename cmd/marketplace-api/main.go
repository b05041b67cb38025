package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/MikeMC777/marketplace-api/internal/catalog"
	"github.com/MikeMC777/marketplace-api/internal/config"
	"github.com/MikeMC777/marketplace-api/internal/health"
	"github.com/MikeMC777/marketplace-api/internal/logging"
	"github.com/MikeMC777/marketplace-api/internal/order"
	"github.com/MikeMC777/marketplace-api/internal/router"
	"github.com/MikeMC777/marketplace-api/internal/store"
	"github.com/MikeMC777/marketplace-api/internal/user"
)

// @title        Marketplace API
// @version      1.0
// @description  Users, orders and catalog/address proxy.
// @BasePath     /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("config",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("grpc_health_addr", cfg.GRPCHealthAddr),
		zap.String("secondary_api_url", cfg.SecondaryBaseURL),
		zap.Duration("secondary_api_timeout", cfg.SecondaryTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := store.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := store.Migrate(pool); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	checker := health.NewChecker(pool, 15*time.Second, log)
	go checker.Run(ctx)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(router.Deps{
		Users:   user.NewService(user.NewPGRepo(pool)),
		Orders:  order.NewService(order.NewPGRepo(pool)),
		Catalog: catalog.New(cfg.SecondaryBaseURL, cfg.SecondaryTimeout, log),
		Health:  checker.HTTPHandler(),
		Log:     log,
	})

	grpcSrv := grpc.NewServer()
	checker.Register(grpcSrv)
	lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCHealthAddr, err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("grpc health listening", zap.String("addr", cfg.GRPCHealthAddr))
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		log.Info("marketplace api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		log.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		log.Warn("http shutdown", zap.Error(serr))
	}
	grpcSrv.GracefulStop()
	return err
}
