package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
	SeedRates       bool
}

type AuthConfig struct {
	AccessSecret string
}

type PricingConfig struct {
	TaxRate          float64
	MarginRate       float64
	DefaultHotelRate float64
}

type ProposalConfig struct {
	CompanyName string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Pricing     PricingConfig
	Proposal    ProposalConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("DB_SEED_RATES", true)
	v.SetDefault("PRICING_TAX_RATE", 0.06)
	v.SetDefault("PRICING_MARGIN_RATE", 0.30)
	v.SetDefault("PRICING_DEFAULT_HOTEL_RATE", 150)
	v.SetDefault("PROPOSAL_COMPANY_NAME", "CourtCraft Surfacing")

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
			SeedRates:       v.GetBool("DB_SEED_RATES"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Pricing: PricingConfig{
			TaxRate:          v.GetFloat64("PRICING_TAX_RATE"),
			MarginRate:       v.GetFloat64("PRICING_MARGIN_RATE"),
			DefaultHotelRate: v.GetFloat64("PRICING_DEFAULT_HOTEL_RATE"),
		},
		Proposal: ProposalConfig{
			CompanyName: strings.TrimSpace(v.GetString("PROPOSAL_COMPANY_NAME")),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.Pricing.TaxRate < 0 {
		return fmt.Errorf("PRICING_TAX_RATE must not be negative")
	}
	if cfg.Pricing.MarginRate < 0 {
		return fmt.Errorf("PRICING_MARGIN_RATE must not be negative")
	}
	if cfg.Pricing.DefaultHotelRate < 0 {
		return fmt.Errorf("PRICING_DEFAULT_HOTEL_RATE must not be negative")
	}
	if cfg.Proposal.CompanyName == "" {
		return fmt.Errorf("PROPOSAL_COMPANY_NAME must not be empty")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
