package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// BillingClient calls the billing service's internal settlement endpoint.
// Settlement is synchronous: acceptance does not complete until the
// commission charge has landed.
type BillingClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewBillingClient creates a billing service client
func NewBillingClient(cfg *models.Config) *BillingClient {
	return &BillingClient{
		baseURL: cfg.Billing.ServiceURL,
		apiKey:  cfg.APIKey.DemandesService,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type settlementEnvelope struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error"`
	Data    models.SettlementResult `json:"data"`
}

// ChargeCommission asks billing to deduct the platform commission for an
// accepted demande and returns the applied percentage and amount.
func (b *BillingClient) ChargeCommission(ctx context.Context, req *models.SettlementRequest) (*models.SettlementResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settlement request: %w", err)
	}

	url := b.baseURL + "/internal/settlements"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build settlement request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", b.apiKey)

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("settlement call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read settlement response: %w", err)
	}

	var envelope settlementEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode settlement response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("settlement rejected by billing service: %s", msg)
	}

	return &envelope.Data, nil
}
