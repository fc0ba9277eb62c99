package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultQuery is asked when neither config nor flags supply a question.
const DefaultQuery = "What is the current unemployment rate and what are the median weekly earnings?"

// RendererConfig controls PDF page rasterization.
type RendererConfig struct {
	DPI int `yaml:"dpi"`
}

// OCRConfig controls recognition and the confidence filter.
type OCRConfig struct {
	Languages []string `yaml:"languages"`
	// ConfidenceThreshold drops words recognized at or below this value.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	// MinWidth upscales narrower pages before recognition; 0 disables.
	MinWidth int `yaml:"min_width"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the sentence embedder.
type EmbedderConfig struct {
	Type   string                `yaml:"type"`
	OpenAI *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// RetrieverConfig controls how much context reaches the generator.
type RetrieverConfig struct {
	TopK int `yaml:"top_k"`
}

// OpenAIGeneratorConfig holds configuration for the chat-completions generator.
type OpenAIGeneratorConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	MaxTokens   int    `yaml:"max_tokens"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// GeneratorConfig selects and configures the answer generator.
type GeneratorConfig struct {
	Type         string                 `yaml:"type"`
	MaxSentences int                    `yaml:"max_sentences"`
	OpenAI       *OpenAIGeneratorConfig `yaml:"openai,omitempty"`
}

// SummaryConfig controls the document summary line.
type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// HistoryConfig configures the answer history database. Empty path
// disables history.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Query     string          `yaml:"query"`
	Renderer  RendererConfig  `yaml:"renderer"`
	OCR       OCRConfig       `yaml:"ocr"`
	Embedder  EmbedderConfig  `yaml:"embedder"`
	Retriever RetrieverConfig `yaml:"retriever"`
	Generator GeneratorConfig `yaml:"generator"`
	Summary   SummaryConfig   `yaml:"summary"`
	History   HistoryConfig   `yaml:"history"`
	// OutputDir receives the per-document answer JSON files; empty means
	// next to each input PDF.
	OutputDir string `yaml:"output_dir"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/docqa/config.yaml.
// If neither exists, it writes defaults to ~/.config/docqa/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docqa", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Query:     DefaultQuery,
		Renderer:  RendererConfig{DPI: 200},
		OCR:       OCRConfig{Languages: []string{"eng"}, ConfidenceThreshold: 0.5, MinWidth: 1200},
		Embedder:  EmbedderConfig{Type: "tfidf"},
		Retriever: RetrieverConfig{TopK: 5},
		Generator: GeneratorConfig{Type: "extractive", MaxSentences: 2},
		Summary:   SummaryConfig{MaxSentences: 3},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Query == "" {
		cfg.Query = DefaultQuery
	}
	if cfg.Renderer.DPI == 0 {
		cfg.Renderer.DPI = 200
	}
	if len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = []string{"eng"}
	}
	if cfg.OCR.ConfidenceThreshold == 0 {
		cfg.OCR.ConfidenceThreshold = 0.5
	}
	if cfg.Retriever.TopK == 0 {
		cfg.Retriever.TopK = 5
	}
	if cfg.Summary.MaxSentences == 0 {
		cfg.Summary.MaxSentences = 3
	}
	if cfg.Generator.Type == "" {
		cfg.Generator.Type = "extractive"
	}
	if cfg.Generator.MaxSentences == 0 {
		cfg.Generator.MaxSentences = 2
	}
	if cfg.Generator.Type == "openai" && cfg.Generator.OpenAI != nil {
		if cfg.Generator.OpenAI.BaseURL == "" {
			cfg.Generator.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Generator.OpenAI.APIKeyEnv == "" {
			cfg.Generator.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Generator.OpenAI.MaxTokens == 0 {
			cfg.Generator.OpenAI.MaxTokens = 200
		}
		if cfg.Generator.OpenAI.TimeoutSecs == 0 {
			cfg.Generator.OpenAI.TimeoutSecs = 60
		}
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
}
