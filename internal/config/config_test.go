package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Query != DefaultQuery {
		t.Fatalf("query = %q", cfg.Query)
	}
	if cfg.OCR.ConfidenceThreshold != 0.5 {
		t.Fatalf("confidence threshold = %v, want 0.5", cfg.OCR.ConfidenceThreshold)
	}
	if cfg.Retriever.TopK != 5 {
		t.Fatalf("top_k = %d, want 5", cfg.Retriever.TopK)
	}
	if cfg.Embedder.Type != "tfidf" || cfg.Generator.Type != "extractive" {
		t.Fatalf("default components = %q/%q", cfg.Embedder.Type, cfg.Generator.Type)
	}
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "query: How many pages?\ngenerator:\n  type: openai\n  openai:\n    model: gpt-4o-mini\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Query != "How many pages?" {
		t.Fatalf("query = %q", cfg.Query)
	}
	if cfg.Generator.OpenAI.MaxTokens != 200 {
		t.Fatalf("max_tokens = %d, want default 200", cfg.Generator.OpenAI.MaxTokens)
	}
	if cfg.Generator.OpenAI.APIKeyEnv != "OPENAI_API_KEY" {
		t.Fatalf("api_key_env = %q", cfg.Generator.OpenAI.APIKeyEnv)
	}
	if cfg.Renderer.DPI != 200 {
		t.Fatalf("dpi = %d, want default 200", cfg.Renderer.DPI)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := defaultConfig()
	cfg.Query = "What changed?"
	cfg.Retriever.TopK = 7
	cfg.History.Path = "answers.db"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Query != "What changed?" || got.Retriever.TopK != 7 || got.History.Path != "answers.db" {
		t.Fatalf("roundtrip lost fields: %+v", got)
	}
}
