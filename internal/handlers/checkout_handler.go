package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/client/simpleswap"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/deeplink"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// Estimator looks up an indicative receive amount from the exchange API.
type Estimator interface {
	GetEstimated(ctx context.Context, params simpleswap.EstimateParams) (string, error)
}

// CheckoutHandler handles checkout link HTTP requests
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	estimator       Estimator
}

// NewCheckoutHandler creates a new checkout handler. The estimator may be
// nil, in which case the estimate endpoint reports unavailability.
func NewCheckoutHandler(checkoutService *services.CheckoutService, estimator Estimator) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		estimator:       estimator,
	}
}

// CreateCheckoutLinkRequest represents the request to create a checkout link
type CreateCheckoutLinkRequest struct {
	Provider              string `json:"provider" binding:"required"`
	WalletAddress         string `json:"wallet_address,omitempty"`
	TargetCurrency        string `json:"target_currency,omitempty"`
	SourceCurrency        string `json:"source_currency,omitempty"`
	Amount                string `json:"amount,omitempty"`
	FixedRate             *bool  `json:"fixed_rate,omitempty"`
	ReturnURL             string `json:"return_url,omitempty"`
	UserID                string `json:"user_id,omitempty"`
	Email                 string `json:"email,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	CountryCode           string `json:"country_code,omitempty"`
	MerchantTransactionID string `json:"merchant_transaction_id,omitempty"`
	IncludeQRCode         bool   `json:"include_qr_code,omitempty"`
}

// ProviderInfo describes one supported provider target
type ProviderInfo struct {
	Provider       string   `json:"provider"`
	RequiredFields []string `json:"required_fields"`
}

// EstimateResponse carries an indicative receive amount
type EstimateResponse struct {
	CurrencyFrom    string `json:"currency_from"`
	CurrencyTo      string `json:"currency_to"`
	Amount          string `json:"amount"`
	EstimatedAmount string `json:"estimated_amount"`
}

// CreateCheckoutLink builds a checkout deep link for the requested provider
func (h *CheckoutHandler) CreateCheckoutLink(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCheckoutLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.checkoutService.CreateCheckoutLink(ctx, services.CheckoutLinkParams{
		Provider: deeplink.ProviderTarget(req.Provider),
		Intent: deeplink.CheckoutIntent{
			WalletAddress:         req.WalletAddress,
			TargetCurrency:        req.TargetCurrency,
			SourceCurrency:        req.SourceCurrency,
			Amount:                req.Amount,
			FixedRate:             req.FixedRate,
			ReturnURL:             req.ReturnURL,
			UserID:                req.UserID,
			Email:                 req.Email,
			Phone:                 req.Phone,
			CountryCode:           req.CountryCode,
			MerchantTransactionID: req.MerchantTransactionID,
		},
		IncludeQRCode: req.IncludeQRCode,
	})
	if err != nil {
		var missingErr *deeplink.MissingFieldsError
		if errors.As(err, &missingErr) {
			sendError(c, http.StatusUnprocessableEntity, err.Error(), err)
			return
		}
		var targetErr *deeplink.UnsupportedTargetError
		if errors.As(err, &targetErr) {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to create checkout link", err)
		return
	}

	sendSuccess(c, http.StatusCreated, resp)
}

// ListProviders returns the closed set of supported provider targets and
// their required fields
func (h *CheckoutHandler) ListProviders(c *gin.Context) {
	providers := make([]ProviderInfo, 0, len(deeplink.Targets()))
	for _, target := range deeplink.Targets() {
		providers = append(providers, ProviderInfo{
			Provider:       string(target),
			RequiredFields: deeplink.RequiredFields(target),
		})
	}
	sendSuccess(c, http.StatusOK, gin.H{
		"object": "list",
		"data":   providers,
	})
}

// GetEstimate proxies a best-effort rate estimate from the exchange API
func (h *CheckoutHandler) GetEstimate(c *gin.Context) {
	if h.estimator == nil {
		sendError(c, http.StatusServiceUnavailable, "Estimates are not configured", nil)
		return
	}

	params := simpleswap.EstimateParams{
		CurrencyFrom: c.Query("from"),
		CurrencyTo:   c.Query("to"),
		Amount:       c.Query("amount"),
		Fixed:        c.Query("fixed") == "true",
	}
	if params.CurrencyFrom == "" || params.CurrencyTo == "" || params.Amount == "" {
		sendError(c, http.StatusBadRequest, "from, to and amount query parameters are required", nil)
		return
	}

	estimate, err := h.estimator.GetEstimated(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusBadGateway, "Failed to fetch estimate", err)
		return
	}

	sendSuccess(c, http.StatusOK, EstimateResponse{
		CurrencyFrom:    params.CurrencyFrom,
		CurrencyTo:      params.CurrencyTo,
		Amount:          params.Amount,
		EstimatedAmount: estimate,
	})
}
