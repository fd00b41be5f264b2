package deeplink

import "strings"

// ProviderTarget identifies one of the supported checkout destinations.
type ProviderTarget string

const (
	// TargetMercuryoWidget renders the Mercuryo buy widget pre-filled
	// with the intent's wallet address and currencies.
	TargetMercuryoWidget ProviderTarget = "mercuryo"
	// TargetExchangeRedirect lands on the exchange's own swap form.
	TargetExchangeRedirect ProviderTarget = "simpleswap-redirect"
)

// Targets returns the closed set of supported provider targets.
func Targets() []ProviderTarget {
	return []ProviderTarget{TargetMercuryoWidget, TargetExchangeRedirect}
}

// currencyAliases maps case-insensitive currency names and network names
// onto one canonical ticker. Lookups are done on the lowercased input.
var currencyAliases = map[string]string{
	"matic":       "MATIC",
	"polygon":     "MATIC",
	"pol":         "MATIC",
	"eth":         "ETH",
	"ether":       "ETH",
	"ethereum":    "ETH",
	"btc":         "BTC",
	"bitcoin":     "BTC",
	"xbt":         "BTC",
	"bnb":         "BNB",
	"bsc":         "BNB",
	"binancecoin": "BNB",
	"usdt":        "USDT",
	"tether":      "USDT",
	"usdc":        "USDC",
	"usd-coin":    "USDC",
	"sol":         "SOL",
	"solana":      "SOL",
	"avax":        "AVAX",
	"avalanche":   "AVAX",
	"trx":         "TRX",
	"tron":        "TRX",
}

// NormalizeCurrency canonicalizes a currency code. Known aliases collapse
// onto one uppercase ticker; unrecognized codes pass through uppercased,
// otherwise unchanged.
func NormalizeCurrency(code string) string {
	if canonical, ok := currencyAliases[strings.ToLower(strings.TrimSpace(code))]; ok {
		return canonical
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Field names reported in validation failures and the providers listing.
const (
	FieldWalletAddress  = "walletAddress"
	FieldTargetCurrency = "targetCurrency"
	FieldSourceCurrency = "sourceCurrency"
)

// RequiredFields returns the required-field set for a target, or nil for
// an unrecognized target.
func RequiredFields(target ProviderTarget) []string {
	switch target {
	case TargetMercuryoWidget:
		return []string{FieldWalletAddress, FieldTargetCurrency}
	case TargetExchangeRedirect:
		return []string{FieldSourceCurrency, FieldTargetCurrency}
	default:
		return nil
	}
}

// MissingFields reports which required fields the intent is missing for
// the given target. A nil result means the intent is valid. It never
// panics; validation failures are plain values for the caller to log.
func MissingFields(intent CheckoutIntent, target ProviderTarget) []string {
	values := map[string]string{
		FieldWalletAddress:  intent.WalletAddress,
		FieldTargetCurrency: intent.TargetCurrency,
		FieldSourceCurrency: intent.SourceCurrency,
	}

	var missing []string
	for _, field := range RequiredFields(target) {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
