// README: Entry point; loads config, builds the generation clients once, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripsummary/internal/ai"
	"tripsummary/internal/config"
	httptransport "tripsummary/internal/http"
	"tripsummary/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	claude, err := ai.NewAnthropicProvider(cfg.AI.AnthropicKey)
	if err != nil {
		log.Fatalf("anthropic init: %v", err)
	}
	log.Printf("anthropic client initialized")

	geminiRoute := ai.Route{Prefix: ai.GeminiModelPrefix}
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		geminiRoute.Generator = gemini
		log.Printf("gemini client initialized")
	}

	summarizer := service.NewSummarizer(ai.NewRouter(claude, geminiRoute), cfg.AI.Timeout)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Summarizer:     summarizer,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("starting trip summary service on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Printf("server stopped")
}
