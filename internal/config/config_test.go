package config_test

import (
	"testing"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Stage)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://exchange.mercuryo.io", cfg.Mercuryo.BaseURL)
	assert.Equal(t, "https://simpleswap.io", cfg.Exchange.BaseURL)
	assert.Equal(t, "https://api.simpleswap.io", cfg.Exchange.APIBaseURL)
	assert.Equal(t, "19.50", cfg.Checkout.DefaultAmount)
	assert.Equal(t, "EUR", cfg.Checkout.DefaultFiatCurrency)
	assert.Equal(t, "MATIC", cfg.Checkout.DefaultTargetCurrency)
	assert.True(t, cfg.Checkout.ProviderOverrides)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STAGE", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MERCURYO_WIDGET_ID", "widget-abc")
	t.Setenv("EXCHANGE_API_KEY", "key-123")
	t.Setenv("CHECKOUT_DEFAULT_WALLET_ADDRESS", "0xabc")
	t.Setenv("CHECKOUT_PROVIDER_OVERRIDES", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Stage)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "widget-abc", cfg.Mercuryo.WidgetID)
	assert.Equal(t, "key-123", cfg.Exchange.APIKey)
	assert.Equal(t, "0xabc", cfg.Checkout.DefaultWalletAddress)
	assert.False(t, cfg.Checkout.ProviderOverrides)
}
