package models

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
corpus:
  - files/movies-mpaa.txt
workers: 8
format: yaml
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.CorpusFiles) != 1 || cfg.CorpusFiles[0] != "files/movies-mpaa.txt" {
		t.Errorf("CorpusFiles = %v, want [files/movies-mpaa.txt]", cfg.CorpusFiles)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", cfg.Format)
	}
	// Unset keys keep their defaults
	if cfg.Encoding != DefaultEncoding {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, DefaultEncoding)
	}
	if cfg.TopN != DefaultTopN {
		t.Errorf("TopN = %d, want %d", cfg.TopN, DefaultTopN)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative workers", "workers: -1\n"},
		{"negative top", "top: -3\n"},
		{"unknown format", "format: xml\n"},
		{"malformed yaml", "corpus: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Errorf("LoadConfig() expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}
