package deeplink_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/deeplink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	mercuryoBase = "https://exchange.mercuryo.io"
	exchangeBase = "https://simpleswap.io"
)

func newTestBuilder(overrides deeplink.OverrideConfig) *deeplink.Builder {
	return deeplink.NewBuilder(deeplink.Config{
		MercuryoBaseURL: mercuryoBase,
		ExchangeBaseURL: exchangeBase,
	}, overrides, zap.NewNop())
}

func TestBuilder_MercuryoWidget(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{WidgetID: "widget-123"})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  "0xDEADBEEF",
		TargetCurrency: "matic",
		SourceCurrency: "eur",
		Amount:         "19.50",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "exchange.mercuryo.io", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "widget-123", query.Get("widget_id"))
	assert.Equal(t, "0xDEADBEEF", query.Get("address"))
	assert.Equal(t, "19.50", query.Get("amount"))
	assert.Equal(t, "MATIC", query.Get("currency"))
	assert.Equal(t, "EUR", query.Get("fiat_currency"))
	assert.Equal(t, "buy", query.Get("type"))
}

func TestBuilder_MercuryoWidget_AddressRoundTrip(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})
	address := "0x!@#$%^&*()"

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  address,
		TargetCurrency: "MATIC",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, address, parsed.Query().Get("address"))
}

func TestBuilder_MercuryoWidget_SpaceEncodesAsPercent20(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  "addr with spaces",
		TargetCurrency: "BTC",
	})
	require.NoError(t, err)

	assert.Contains(t, link, "address=addr%20with%20spaces")
	assert.NotContains(t, link, "address=addr+with")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "addr with spaces", parsed.Query().Get("address"))
}

func TestBuilder_MercuryoWidget_BaseSlashNormalization(t *testing.T) {
	tests := []struct {
		name string
		base string
	}{
		{name: "no trailing slash", base: "https://exchange.mercuryo.io"},
		{name: "one trailing slash", base: "https://exchange.mercuryo.io/"},
		{name: "many trailing slashes", base: "https://exchange.mercuryo.io///"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := deeplink.NewBuilder(deeplink.Config{
				MercuryoBaseURL: tt.base,
				ExchangeBaseURL: exchangeBase,
			}, deeplink.OverrideConfig{}, zap.NewNop())

			link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
				WalletAddress:  "0xabc",
				TargetCurrency: "MATIC",
			})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(link, "https://exchange.mercuryo.io/?"), link)
		})
	}
}

func TestBuilder_MercuryoWidget_UnparsableAmountDropped(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "plain number kept", amount: "19.50", want: "19.50"},
		{name: "integer kept", amount: "100", want: "100"},
		{name: "word dropped", amount: "invalid", want: ""},
		{name: "infinity dropped", amount: "Inf", want: ""},
		{name: "nan dropped", amount: "NaN", want: ""},
		{name: "empty stays absent", amount: "", want: ""},
	}

	builder := newTestBuilder(deeplink.OverrideConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
				WalletAddress:  "0xabc",
				TargetCurrency: "MATIC",
				Amount:         tt.amount,
			})
			require.NoError(t, err)

			if tt.want == "" {
				assert.NotContains(t, link, "amount=")
			} else {
				assert.Contains(t, link, "amount="+tt.want)
			}
		})
	}
}

func TestBuilder_MercuryoWidget_AbsentOptionalsOmitted(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  "0xabc",
		TargetCurrency: "MATIC",
	})
	require.NoError(t, err)

	for _, param := range []string{"email=", "phone=", "user_id=", "return_url=", "country_code=", "merchant_transaction_id="} {
		assert.NotContains(t, link, param)
	}
	assert.NotContains(t, link, "null")
	assert.NotContains(t, link, "undefined")
}

func TestBuilder_MercuryoWidget_OptionalPassThrough(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:         "0xabc",
		TargetCurrency:        "MATIC",
		ReturnURL:             "https://example.com/done?ok=1",
		UserID:                "user-7",
		Email:                 "buyer@example.com",
		Phone:                 "+15551234567",
		CountryCode:           "DE",
		MerchantTransactionID: "txn-42",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "https://example.com/done?ok=1", query.Get("return_url"))
	assert.Equal(t, "user-7", query.Get("user_id"))
	assert.Equal(t, "buyer@example.com", query.Get("email"))
	assert.Equal(t, "+15551234567", query.Get("phone"))
	assert.Equal(t, "DE", query.Get("country_code"))
	assert.Equal(t, "txn-42", query.Get("merchant_transaction_id"))
}

func TestBuilder_MercuryoWidget_EmptyWidgetIDStillSerialized(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  "0xabc",
		TargetCurrency: "MATIC",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://exchange.mercuryo.io/?widget_id=&"), link)
}

func TestBuilder_MercuryoWidget_OverridesAppendedLast(t *testing.T) {
	builder := newTestBuilder(deeplink.DefaultOverrides("widget-123"))

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  "0xabc",
		TargetCurrency: "MATIC",
	})
	require.NoError(t, err)

	assert.Contains(t, link, "provider=mercuryo")
	assert.Contains(t, link, "mobile_override=false")
	assert.Contains(t, link, "provider_lock=true")
	assert.Contains(t, link, "desktop_mode=true")
	assert.Less(t, strings.Index(link, "type=buy"), strings.Index(link, "provider=mercuryo"))
}

func TestBuilder_MercuryoWidget_OverrideWinsOnCollision(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{
		Extra: []deeplink.Param{{Key: "user_id", Value: "override-user"}},
	})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{
		WalletAddress:  "0xabc",
		TargetCurrency: "MATIC",
		UserID:         "intent-user",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(link, "user_id="))
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "override-user", parsed.Query().Get("user_id"))
}

func TestBuilder_ExchangeRedirect(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetExchangeRedirect, deeplink.CheckoutIntent{
		SourceCurrency: "btc",
		TargetCurrency: "eth",
		Amount:         "0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, exchangeBase+"?from=btc&to=eth&amount=0.1", link)
}

func TestBuilder_ExchangeRedirect_FixedFlag(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})
	fixed := true
	floating := false

	tests := []struct {
		name      string
		fixedRate *bool
		want      string
	}{
		{name: "fixed true", fixedRate: &fixed, want: "&fixed=true"},
		{name: "fixed false", fixedRate: &floating, want: "&fixed=false"},
		{name: "flag absent", fixedRate: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := builder.Build(deeplink.TargetExchangeRedirect, deeplink.CheckoutIntent{
				SourceCurrency: "btc",
				TargetCurrency: "eth",
				FixedRate:      tt.fixedRate,
			})
			require.NoError(t, err)

			if tt.want == "" {
				assert.NotContains(t, link, "fixed=")
			} else {
				assert.Contains(t, link, tt.want)
			}
		})
	}
}

func TestBuilder_ExchangeRedirect_NoNormalization(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetExchangeRedirect, deeplink.CheckoutIntent{
		SourceCurrency: "polygon",
		TargetCurrency: "btc",
		WalletAddress:  "bc1q xyz",
	})
	require.NoError(t, err)

	// Codes pass through verbatim, no alias collapsing on this target.
	assert.Contains(t, link, "from=polygon")
	assert.Contains(t, link, "to=btc")
	assert.Contains(t, link, "address=bc1q%20xyz")
}

func TestBuilder_UnsupportedTarget(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.ProviderTarget("unknown"), deeplink.CheckoutIntent{})
	assert.Empty(t, link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unsupported provider")

	var targetErr *deeplink.UnsupportedTargetError
	require.True(t, errors.As(err, &targetErr))
	assert.Equal(t, "unknown", targetErr.Target)
}

func TestBuilder_MissingRequiredFields(t *testing.T) {
	builder := newTestBuilder(deeplink.OverrideConfig{})

	link, err := builder.Build(deeplink.TargetMercuryoWidget, deeplink.CheckoutIntent{})
	assert.Empty(t, link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required parameters")

	var missingErr *deeplink.MissingFieldsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"walletAddress", "targetCurrency"}, missingErr.Fields)
}

func TestBuilder_Deterministic(t *testing.T) {
	builder := newTestBuilder(deeplink.DefaultOverrides("widget-123"))
	intent := deeplink.CheckoutIntent{
		WalletAddress:  "0xabc",
		TargetCurrency: "matic",
		Amount:         "19.50",
		Email:          "buyer@example.com",
	}

	first, err := builder.Build(deeplink.TargetMercuryoWidget, intent)
	require.NoError(t, err)
	second, err := builder.Build(deeplink.TargetMercuryoWidget, intent)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
