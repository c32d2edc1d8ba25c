package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"negotiation-agent/config"
	httpLayer "negotiation-agent/http"
	"negotiation-agent/repository"
	"negotiation-agent/service"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Error loading config %s: %v", *configPath, err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	var sessions repository.SessionRepository
	if cfg.Redis.Enabled {
		sessions = repository.NewRedisSessionStore(cfg.Redis.Addr, cfg.Redis.SessionTTL)
		log.Printf("Using Redis session store at %s", cfg.Redis.Addr)
	} else {
		sessions = repository.NewMemorySessionStore()
	}

	params := negotiationParams(cfg.Negotiation)
	negotiationService := service.NewNegotiationService(params, nil)
	negotiateHandler := httpLayer.NewNegotiateHandler(negotiationService, sessions)

	pitchService := service.NewPitchService(cfg.OpenAI.Model, cfg.OpenAI.MaxTokens)
	pitchHandler := httpLayer.NewPitchHandler(pitchService)

	selectorHandler := httpLayer.NewSelectorHandler()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", httpLayer.Home)
	mux.Handle(
		"/negotiate/chat",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(negotiateHandler.Chat),
		),
	)

	mux.Handle(
		"/borrower/generate-pitch",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(pitchHandler.GeneratePitch),
		),
	)

	mux.Handle(
		"/investor/select",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(selectorHandler.SelectOffer),
		),
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Negotiation API listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// negotiationParams layers config overrides onto the engine defaults.
func negotiationParams(nc config.NegotiationConfig) service.Params {
	params := service.DefaultParams()
	if nc.BaseFloor > 0 {
		params.BaseFloor = nc.BaseFloor
	}
	if nc.BucketSize > 0 {
		params.BucketSize = nc.BucketSize
	}
	if nc.AcceptCloseDelta > 0 {
		params.AcceptCloseDelta = nc.AcceptCloseDelta
	}
	if nc.GiveawayAlpha > 0 {
		params.GiveawayAlpha = nc.GiveawayAlpha
	}
	if nc.MinNudge > 0 {
		params.MinNudge = nc.MinNudge
	}
	return params
}
