package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-redis/redis/v8"
)

func main() {
	logger := log.New(os.Stdout, "seoagent ", log.LstdFlags|log.Lmicroseconds)
	ctx := context.Background()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatalf("could not load configuration: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("could not connect to redis (%s): %v", cfg.RedisAddr, err)
	}

	store := NewRedisStore(redisClient)
	orchestrator := NewOrchestratorClient(cfg.OrchestratorURL, cfg.OrchestratorTimeout)
	handler := NewHandler(store, orchestrator, cfg.SiteURL, logger)

	auth := basicAuthMiddleware(cfg.BasicUser, cfg.BasicPass, logger)

	mux := http.NewServeMux()
	mux.Handle("/generate-meta/", auth(http.HandlerFunc(handler.generateMetaHandler)))
	mux.HandleFunc("/posts/", handler.previewHandler)
	mux.HandleFunc("/status", handler.statusHandler)

	loggedMux := loggingMiddleware(logger)(mux)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      loggedMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.OrchestratorTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Printf("server is listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("could not listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Println("server is shutting down")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Println("server stopped")
}
