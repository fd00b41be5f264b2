package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/config"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/deeplink"
	"github.com/blinds123/simpleswap-realtime-test-sub001/internal/metrics"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// CheckoutService builds checkout deep links on top of the raw link
// builder: it merges configured defaults into the intent, assigns a
// merchant transaction id when the caller has none, and renders a QR
// code for the produced link.
type CheckoutService struct {
	builder  *deeplink.Builder
	defaults config.CheckoutConfig
	metrics  *metrics.CheckoutMetrics
	logger   *zap.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(builder *deeplink.Builder, defaults config.CheckoutConfig, m *metrics.CheckoutMetrics, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		builder:  builder,
		defaults: defaults,
		metrics:  m,
		logger:   logger,
	}
}

// CheckoutLinkParams carries one link request into the service.
type CheckoutLinkParams struct {
	Provider      deeplink.ProviderTarget
	Intent        deeplink.CheckoutIntent
	IncludeQRCode bool
}

// CheckoutLinkResponse is the immutable result handed to the redirect
// step. A response exists only for successful constructions; failures
// surface as errors.
type CheckoutLinkResponse struct {
	URL                   string `json:"url"`
	Provider              string `json:"provider"`
	MerchantTransactionID string `json:"merchant_transaction_id,omitempty"`
	QRCodeData            string `json:"qr_code_data,omitempty"`
}

// CreateCheckoutLink builds one deep link. The context is accepted for
// interface symmetry with the rest of the service layer; construction
// itself never blocks on I/O.
func (s *CheckoutService) CreateCheckoutLink(ctx context.Context, params CheckoutLinkParams) (*CheckoutLinkResponse, error) {
	intent := params.Intent
	if params.Provider == deeplink.TargetMercuryoWidget {
		intent = s.applyDefaults(intent)
		if intent.MerchantTransactionID == "" {
			intent.MerchantTransactionID = uuid.New().String()
		}
	}

	start := time.Now()
	link, err := s.builder.Build(params.Provider, intent)
	s.metrics.RecordBuildDuration(string(params.Provider), time.Since(start).Seconds())
	if err != nil {
		s.metrics.RecordLinkFailure(string(params.Provider), failureReason(err))
		return nil, err
	}
	s.metrics.RecordLinkGenerated(string(params.Provider))

	resp := &CheckoutLinkResponse{
		URL:                   link,
		Provider:              string(params.Provider),
		MerchantTransactionID: intent.MerchantTransactionID,
	}

	if params.IncludeQRCode {
		qrData, err := s.GenerateQRCode(ctx, link)
		if err != nil {
			// A missing QR code never fails the whole construction.
			s.logger.Error("Failed to generate QR code", zap.Error(err))
		} else {
			resp.QRCodeData = qrData
		}
	}

	return resp, nil
}

// GenerateQRCode renders a link as a base64 PNG data URL.
func (s *CheckoutService) GenerateQRCode(ctx context.Context, link string) (string, error) {
	qr, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(pngBytes)), nil
}

// applyDefaults fills empty intent fields from the configured defaults.
// Explicit caller values always win. Defaults only make sense for the
// hosted widget target; redirect intents pass through untouched.
func (s *CheckoutService) applyDefaults(intent deeplink.CheckoutIntent) deeplink.CheckoutIntent {
	if intent.WalletAddress == "" {
		intent.WalletAddress = s.defaults.DefaultWalletAddress
	}
	if intent.TargetCurrency == "" {
		intent.TargetCurrency = s.defaults.DefaultTargetCurrency
	}
	if intent.SourceCurrency == "" {
		intent.SourceCurrency = s.defaults.DefaultFiatCurrency
	}
	if intent.Amount == "" {
		intent.Amount = s.defaults.DefaultAmount
	}
	return intent
}

// failureReason buckets builder errors for metrics labels.
func failureReason(err error) string {
	var missingErr *deeplink.MissingFieldsError
	if errors.As(err, &missingErr) {
		return "missing_fields"
	}
	var targetErr *deeplink.UnsupportedTargetError
	if errors.As(err, &targetErr) {
		return "unsupported_target"
	}
	return "unknown"
}
