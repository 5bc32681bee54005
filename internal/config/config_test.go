package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "debug with short secret",
			cfg: Config{
				Server:   ServerConfig{Mode: "debug"},
				Database: DatabaseConfig{Driver: "sqlite"},
				JWT:      JWTConfig{Secret: "short"},
			},
		},
		{
			name: "release with short secret",
			cfg: Config{
				Server:   ServerConfig{Mode: "release"},
				Database: DatabaseConfig{Driver: "postgres"},
				JWT:      JWTConfig{Secret: "short"},
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			cfg: Config{
				Database: DatabaseConfig{Driver: "oracle"},
				JWT:      JWTConfig{Secret: "whatever"},
			},
			wantErr: true,
		},
		{
			name: "missing secret",
			cfg: Config{
				Database: DatabaseConfig{Driver: "mysql"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	if !(ServerConfig{Mode: "debug"}).IsDevelopment() {
		t.Fatalf("debug mode should be development")
	}
	if (ServerConfig{Mode: "release"}).IsDevelopment() {
		t.Fatalf("release mode should not be development")
	}
}

func TestLoadConfigDefaultsCORSOrigins(t *testing.T) {
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	yaml := "database:\n  driver: sqlite\njwt:\n  secret: config-test-secret\nstorage:\n  local_path: " + uploads + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Fatalf("cors.allowed_origins should have a default")
	}
}
