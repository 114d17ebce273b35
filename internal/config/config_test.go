package config

import (
	"reflect"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://localhost/estimates")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != 7090 {
		t.Errorf("HTTP = %s:%d, want 0.0.0.0:7090", cfg.HTTP.Host, cfg.HTTP.Port)
	}
	if !reflect.DeepEqual(cfg.HTTP.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.HTTP.AllowedOrigins)
	}
	if !cfg.DB.SeedRates {
		t.Error("SeedRates should default to true")
	}
	if cfg.Pricing.TaxRate != 0.06 || cfg.Pricing.MarginRate != 0.30 || cfg.Pricing.DefaultHotelRate != 150 {
		t.Errorf("Pricing = %+v, want 0.06 / 0.30 / 150", cfg.Pricing)
	}
	if cfg.Proposal.CompanyName != "CourtCraft Surfacing" {
		t.Errorf("CompanyName = %q", cfg.Proposal.CompanyName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("DB_SEED_RATES", "false")
	t.Setenv("PRICING_TAX_RATE", "0.0825")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Environment != "production" || cfg.HTTP.Port != 8081 {
		t.Errorf("got env %q port %d", cfg.Environment, cfg.HTTP.Port)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.HTTP.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.HTTP.AllowedOrigins, want)
	}
	if cfg.DB.SeedRates {
		t.Error("SeedRates should be false")
	}
	if cfg.Pricing.TaxRate != 0.0825 {
		t.Errorf("TaxRate = %v, want 0.0825", cfg.Pricing.TaxRate)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dsn", map[string]string{"DB_DSN": "", "JWT_ACCESS_SECRET": "secret"}},
		{"missing secret", map[string]string{"DB_DSN": "postgres://x", "JWT_ACCESS_SECRET": ""}},
		{"negative margin", map[string]string{"DB_DSN": "postgres://x", "JWT_ACCESS_SECRET": "s", "PRICING_MARGIN_RATE": "-0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
