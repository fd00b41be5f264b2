package deeplink

// CheckoutIntent carries everything a caller wants pre-filled on the
// exchange's checkout form. WalletAddress and TargetCurrency are required
// for the Mercuryo widget; SourceCurrency and TargetCurrency for the
// exchange redirect. Everything else is optional and an empty value means
// "not provided" — optional fields are never serialized as placeholder
// text like "null" or "undefined".
type CheckoutIntent struct {
	WalletAddress         string
	TargetCurrency        string
	SourceCurrency        string
	Amount                string
	FixedRate             *bool
	ReturnURL             string
	UserID                string
	Email                 string
	Phone                 string
	CountryCode           string
	MerchantTransactionID string
}
