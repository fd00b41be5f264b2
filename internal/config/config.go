package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full application configuration, read once at startup and
// treated as read-only afterward.
type Config struct {
	Stage    string `env:"STAGE" env-default:"development"`
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`
	Log      LogConfig
	Mercuryo MercuryoConfig
	Exchange ExchangeConfig
	Checkout CheckoutConfig
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// MercuryoConfig configures the Mercuryo widget target.
type MercuryoConfig struct {
	BaseURL  string `env:"MERCURYO_BASE_URL" env-default:"https://exchange.mercuryo.io"`
	WidgetID string `env:"MERCURYO_WIDGET_ID" env-default:""`
}

// ExchangeConfig configures the exchange redirect target and the
// exchange's public API used for rate estimates.
type ExchangeConfig struct {
	BaseURL    string `env:"EXCHANGE_BASE_URL" env-default:"https://simpleswap.io"`
	APIBaseURL string `env:"EXCHANGE_API_BASE_URL" env-default:"https://api.simpleswap.io"`
	APIKey     string `env:"EXCHANGE_API_KEY" env-default:""`
}

// CheckoutConfig holds the defaults merged into an intent when the caller
// leaves the corresponding fields empty.
type CheckoutConfig struct {
	DefaultWalletAddress  string `env:"CHECKOUT_DEFAULT_WALLET_ADDRESS" env-default:""`
	DefaultAmount         string `env:"CHECKOUT_DEFAULT_AMOUNT" env-default:"19.50"`
	DefaultFiatCurrency   string `env:"CHECKOUT_DEFAULT_FIAT_CURRENCY" env-default:"EUR"`
	DefaultTargetCurrency string `env:"CHECKOUT_DEFAULT_TARGET_CURRENCY" env-default:"MATIC"`
	// ProviderOverrides toggles the provider-bias parameter set on widget
	// links.
	ProviderOverrides bool `env:"CHECKOUT_PROVIDER_OVERRIDES" env-default:"true"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad reads configuration from the environment and exits on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to read config: %v\n", err)
	}
	return cfg
}
