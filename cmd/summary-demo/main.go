package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"tripsummary/internal/ai"
	"tripsummary/internal/config"
	"tripsummary/internal/prompt"
	"tripsummary/internal/service"
	"tripsummary/internal/trip"
)

func main() {
	tripFile := flag.String("trip", "", "path to a trip JSON file (either schema)")
	generate := flag.Bool("generate", false, "send the prompt to the generation service")
	model := flag.String("model", service.DefaultModel, "model name when -generate is set")
	flag.Parse()

	if *tripFile == "" {
		log.Fatal("-trip is required")
	}
	raw, err := os.ReadFile(*tripFile)
	if err != nil {
		log.Fatalf("read trip: %v", err)
	}
	var rec trip.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		log.Fatalf("decode trip: %v", err)
	}

	fmt.Printf("Prompt:\n%s\n", prompt.Build(rec))
	if !*generate {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	var gen ai.Generator
	if strings.HasPrefix(*model, ai.GeminiModelPrefix) {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini: %v", err)
		}
		defer gemini.Close()
		gen = gemini
	} else {
		gen, err = ai.NewAnthropicProvider(cfg.AI.AnthropicKey)
		if err != nil {
			log.Fatalf("Failed to initialize Anthropic: %v", err)
		}
	}

	summary, err := service.NewSummarizer(gen, cfg.AI.Timeout).Summarize(ctx, rec, service.Params{Model: model})
	if err != nil {
		log.Fatalf("Error generating summary: %v", err)
	}
	fmt.Printf("\nSummary (%s):\n%s\n", summary.Model, summary.Text)
}
