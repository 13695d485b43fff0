package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid",
			config: Config{
				Upstream: UpstreamConfig{BaseURL: "https://api.example.com/v3", APIKey: "k"},
			},
		},
		{
			name: "missing base URL",
			config: Config{
				Upstream: UpstreamConfig{APIKey: "k"},
			},
			wantErr: "base URL",
		},
		{
			name: "missing API key",
			config: Config{
				Upstream: UpstreamConfig{BaseURL: "https://api.example.com/v3"},
			},
			wantErr: "API key",
		},
		{
			name:    "missing both reports base URL first",
			config:  Config{},
			wantErr: "base URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var config Config
	applyDefaults(&config)

	if config.Server.Port != "8080" {
		t.Errorf("Port = %q, want %q", config.Server.Port, "8080")
	}
	if config.Upstream.Timeout != 15 {
		t.Errorf("Timeout = %d, want 15", config.Upstream.Timeout)
	}
	if config.Upstream.CacheTTLSeconds != 60 {
		t.Errorf("CacheTTLSeconds = %d, want 60", config.Upstream.CacheTTLSeconds)
	}
	if config.Logger.Level != "info" {
		t.Errorf("Level = %q, want %q", config.Logger.Level, "info")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	config := Config{
		Server:   ServerConfig{Port: "9999"},
		Upstream: UpstreamConfig{Timeout: 3, CacheTTLSeconds: 5},
		Logger:   LoggerConfig{Level: "debug"},
	}
	applyDefaults(&config)

	if config.Server.Port != "9999" {
		t.Errorf("Port = %q, want %q", config.Server.Port, "9999")
	}
	if config.Upstream.Timeout != 3 {
		t.Errorf("Timeout = %d, want 3", config.Upstream.Timeout)
	}
	if config.Upstream.CacheTTLSeconds != 5 {
		t.Errorf("CacheTTLSeconds = %d, want 5", config.Upstream.CacheTTLSeconds)
	}
	if config.Logger.Level != "debug" {
		t.Errorf("Level = %q, want %q", config.Logger.Level, "debug")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("COINPULSE_API_BASE_URL", "https://override.example.com")
	t.Setenv("COINPULSE_API_KEY", "env-key")

	config := Config{
		Upstream: UpstreamConfig{BaseURL: "https://file.example.com", APIKey: "file-key"},
	}
	applyEnvOverrides(&config)

	if config.Upstream.BaseURL != "https://override.example.com" {
		t.Errorf("BaseURL = %q, want env override", config.Upstream.BaseURL)
	}
	if config.Upstream.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env override", config.Upstream.APIKey)
	}
}
