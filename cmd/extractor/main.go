package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shashibaranwal/company-info-extractor/internal/di"
	"github.com/shashibaranwal/company-info-extractor/internal/infrastructure/env"
)

// Sample essay, processed when ESSAY_FILE is not set.
const sampleEssay = `
Google LLC was founded on September 4, 1998, by Larry Page and Sergey Brin while they were Ph.D. students at Stanford University. It evolved from a research project into a global leader in search technology.
Microsoft was established in 1975 by Bill Gates and Paul Allen. The company played a pivotal role in the personal computing revolution with its development of the MS-DOS operating system.
Amazon, founded by Jeff Bezos in July 1994, began as an online bookstore and has since expanded into a vast e-commerce and cloud computing empire.
`

func main() {
	envService := env.NewEnvService()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	container, err := di.NewContainer(di.Config{
		GeminiAPIKey:   envService.MustGet("GEMINI_API_KEY"),
		GeminiModel:    envService.GetDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		OutputCSV:      envService.GetDefault("OUTPUT_CSV", "company_info.csv"),
		AgentOutputCSV: envService.GetDefault("AGENT_OUTPUT_CSV", "company_info_agent.csv"),
		Workers:        envService.GetInt("EXTRACT_WORKERS", 1),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	essay := sampleEssay
	if path := envService.Get("ESSAY_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			container.Logger.Error("Could not read essay file", "path", path, "error", err)
			log.Fatalf("Could not read essay file %s: %v", path, err)
		}
		essay = string(data)
	}

	container.Logger.Info("Extraction started")

	records, err := container.Extractor.ProcessEssay(ctx, essay)
	if err != nil {
		container.Logger.Error("Extraction failed", "error", err)
		fmt.Printf("Extraction failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Extracted %d records\n", len(records))

	if envService.GetBool("AGENT_ENABLED", true) {
		saved, err := container.Agent.Run(ctx, essay)
		if err != nil {
			container.Logger.Error("Agent run failed", "error", err)
			fmt.Printf("Agent run failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Agent saved %d records\n", saved)
	}
}
