package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address, got %q", cfg.Address)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Errorf("expected default upload size, got %d", cfg.UploadSizeBytes())
	}
}

func TestLoadConfigDefaultsWhenEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address, got %q", cfg.Address)
	}
}

func TestLoadConfigParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	contents := `---
address: ":9090"
maxUploadSize: 1MB
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("expected address :9090, got %q", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 1024*1024 {
		t.Errorf("expected 1 MB upload size, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug log level, got %q", cfg.Logging.Level)
	}
}

func TestParseUploadSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{
			name:     "Plain bytes",
			input:    "1024",
			expected: 1024,
		},
		{
			name:     "Bytes suffix",
			input:    "512B",
			expected: 512,
		},
		{
			name:     "Kilobytes",
			input:    "256KB",
			expected: 256 * 1024,
		},
		{
			name:     "Megabytes",
			input:    "2MB",
			expected: 2 * 1024 * 1024,
		},
		{
			name:     "Lowercase suffix",
			input:    "64kb",
			expected: 64 * 1024,
		},
		{
			name:    "Garbage",
			input:   "lots",
			wantErr: true,
		},
		{
			name:    "Zero",
			input:   "0",
			wantErr: true,
		},
		{
			name:    "Negative",
			input:   "-1KB",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUploadSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseUploadSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("parseUploadSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
