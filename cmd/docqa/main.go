package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"docqa/internal/config"
	"docqa/internal/domain"
	"docqa/internal/embedding"
	embopenai "docqa/internal/embedding/openai"
	"docqa/internal/embedding/tfidf"
	"docqa/internal/extract"
	"docqa/internal/generator"
	genopenai "docqa/internal/generator/openai"
	"docqa/internal/ocr/tesseract"
	"docqa/internal/render"
	"docqa/internal/service"
	"docqa/internal/store"
	"docqa/internal/summarizer"
	"docqa/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath     string
		query       string
		interactive bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docqa/config.yaml if not provided)")
	flag.StringVar(&query, "query", "", "Question to ask each document (overrides the configured default)")
	flag.BoolVar(&interactive, "i", false, "Open an interactive session on the last processed document")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: docqa [--config=config.yaml] [--query=\"...\"] [-i] file1.pdf [file2.pdf ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if query == "" {
		query = cfg.Query
	}

	// Assemble components
	var emb embedding.Embedder
	switch cfg.Embedder.Type {
	case "tfidf", "":
		emb = tfidf.NewEmbedder()
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		client, err := embopenai.NewClient(embopenai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		emb = client
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var gen generator.Generator
	switch cfg.Generator.Type {
	case "extractive", "":
		gen = generator.NewExtractive(cfg.Generator.MaxSentences)
	case "openai":
		if cfg.Generator.OpenAI == nil {
			log.Fatalf("openai generator config missing")
		}
		client, err := genopenai.NewClient(genopenai.Config{
			BaseURL:   cfg.Generator.OpenAI.BaseURL,
			APIKeyEnv: cfg.Generator.OpenAI.APIKeyEnv,
			Model:     cfg.Generator.OpenAI.Model,
			MaxTokens: cfg.Generator.OpenAI.MaxTokens,
			Timeout:   time.Duration(cfg.Generator.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai generator init failed: %v", err)
		}
		gen = client
	default:
		log.Fatalf("unknown generator: %s", cfg.Generator.Type)
	}

	var history domain.AnswerStore
	if cfg.History.Path != "" {
		history, err = store.Open(cfg.History.Path)
		if err != nil {
			log.Fatalf("open history failed: %v", err)
		}
		defer history.Close()
	}

	engine := tesseract.New(cfg.OCR.MinWidth)
	pipeline := service.New(service.Deps{
		Opener:          render.NewOpener(cfg.Renderer.DPI),
		Extractor:       extract.New(engine, cfg.OCR.ConfidenceThreshold, cfg.OCR.Languages, cfg.Renderer.DPI),
		Embedder:        emb,
		Generator:       gen,
		Summarizer:      summarizer.NewFrequencySummarizer(),
		Store:           history,
		TopK:            cfg.Retriever.TopK,
		SummarySentence: cfg.Summary.MaxSentences,
		OutputDir:       cfg.OutputDir,
		Logger:          log.New(os.Stderr, "", log.LstdFlags),
	})

	sessions, err := pipeline.Run(context.Background(), inputs, query)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}
	for _, s := range sessions {
		fmt.Printf("%s\n  Q: %s\n  A: %s\n", s.Document.Name, s.Record.Question, s.Record.Answer)
	}
	if len(sessions) == 0 {
		log.Fatalf("no documents processed successfully")
	}

	if interactive {
		m := tui.New(pipeline, sessions[len(sessions)-1])
		if _, err := tea.NewProgram(m).Run(); err != nil {
			log.Fatal(err)
		}
	}
}
