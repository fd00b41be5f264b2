package deeplink

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const defaultFiatCurrency = "EUR"

// Config holds the base URLs a Builder renders against. Read-only after
// construction.
type Config struct {
	// MercuryoBaseURL is the widget base, with or without a trailing
	// slash; the builder normalizes it to exactly one.
	MercuryoBaseURL string
	// ExchangeBaseURL is the exchange's swap form base.
	ExchangeBaseURL string
}

// Builder renders a CheckoutIntent into a fully qualified checkout URL
// for a provider target. Construction is synchronous, deterministic and
// performs no I/O beyond diagnostic logging, so a Builder is safe for
// concurrent use.
type Builder struct {
	cfg       Config
	overrides OverrideConfig
	logger    *zap.Logger
}

// NewBuilder creates a link builder. The config and overrides are copied
// and never mutated afterward.
func NewBuilder(cfg Config, overrides OverrideConfig, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		cfg:       cfg,
		overrides: overrides,
		logger:    logger,
	}
}

// Build renders the intent for the given target. On validation or
// dispatch failure it logs a diagnostic and returns an empty URL with a
// typed error; it never panics.
func (b *Builder) Build(target ProviderTarget, intent CheckoutIntent) (string, error) {
	switch target {
	case TargetMercuryoWidget:
		return b.buildMercuryoWidget(intent)
	case TargetExchangeRedirect:
		return b.buildExchangeRedirect(intent)
	default:
		err := &UnsupportedTargetError{Target: string(target)}
		b.logger.Warn("Unsupported provider target",
			zap.String("target", string(target)),
		)
		return "", err
	}
}

func (b *Builder) buildMercuryoWidget(intent CheckoutIntent) (string, error) {
	if missing := MissingFields(intent, TargetMercuryoWidget); missing != nil {
		return "", b.missingFieldsFailure(TargetMercuryoWidget, missing)
	}

	fiat := intent.SourceCurrency
	if fiat == "" {
		fiat = defaultFiatCurrency
	}

	q := &queryParams{}
	q.addAlways("widget_id", b.overrides.WidgetID)
	q.add("address", intent.WalletAddress)
	q.add("amount", parsableAmount(intent.Amount))
	q.add("currency", NormalizeCurrency(intent.TargetCurrency))
	q.add("fiat_currency", NormalizeCurrency(fiat))
	q.add("type", "buy")
	q.add("return_url", intent.ReturnURL)
	q.add("user_id", intent.UserID)
	q.add("email", intent.Email)
	q.add("phone", intent.Phone)
	q.add("country_code", intent.CountryCode)
	q.add("merchant_transaction_id", intent.MerchantTransactionID)
	for _, p := range b.overrides.Extra {
		q.set(p.Key, p.Value)
	}

	base := strings.TrimRight(b.cfg.MercuryoBaseURL, "/") + "/"
	return base + "?" + q.encode(), nil
}

func (b *Builder) buildExchangeRedirect(intent CheckoutIntent) (string, error) {
	if missing := MissingFields(intent, TargetExchangeRedirect); missing != nil {
		return "", b.missingFieldsFailure(TargetExchangeRedirect, missing)
	}

	// Currency codes pass through verbatim here; the exchange expects its
	// own lowercase tickers.
	q := &queryParams{}
	q.add("from", intent.SourceCurrency)
	q.add("to", intent.TargetCurrency)
	q.add("amount", parsableAmount(intent.Amount))
	q.add("address", intent.WalletAddress)
	if intent.FixedRate != nil {
		q.add("fixed", strconv.FormatBool(*intent.FixedRate))
	}

	return b.cfg.ExchangeBaseURL + "?" + q.encode(), nil
}

func (b *Builder) missingFieldsFailure(target ProviderTarget, missing []string) error {
	b.logger.Warn("Missing required parameters",
		zap.String("target", string(target)),
		zap.Strings("fields", missing),
	)
	return &MissingFieldsError{Target: target, Fields: missing}
}

// parsableAmount returns the amount verbatim when it parses as a finite
// number, or empty when it does not — an unparsable amount is dropped
// rather than failing the whole construction.
func parsableAmount(amount string) string {
	if amount == "" {
		return ""
	}
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return ""
	}
	return amount
}
