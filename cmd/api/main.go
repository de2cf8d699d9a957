package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-optimizer/internal/api"
	"inventory-optimizer/internal/cache"
	"inventory-optimizer/internal/config"
	"inventory-optimizer/internal/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadServer(os.Getenv("SERVER_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load server config: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := cache.New(cfg.ResultCacheTTL)
	if results != nil {
		go results.Run(ctx, 5*time.Minute)
		log.Printf("Result cache enabled (ttl=%s)", cfg.ResultCacheTTL)
	}

	router := api.NewRouter(cfg, api.Deps{
		Results: results,
		Metrics: metrics.New(),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}
	go func() {
		log.Printf("Starting API server on %s (validation policy: %s)", srv.Addr, cfg.Allocator().Policy())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
