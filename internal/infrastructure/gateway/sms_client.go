// Package gateway is the HTTP adapter for the external SMS dispatch server.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	appcampaign "github.com/netpulse/netpulse-api/internal/application/campaign"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/pkg/config"
)

var _ appcampaign.Dispatcher = (*SMSClient)(nil)

// SMSClient implements campaign.Dispatcher against the dispatch server's REST
// API. With an empty BaseURL the client runs in simulated mode: messages are
// logged and reported as delivered, so campaigns work in development without a
// live gateway.
type SMSClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSMSClient builds the client from the gateway configuration.
func NewSMSClient(cfg config.GatewayConfig) *SMSClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SMSClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	SenderID string `json:"sender_id"`
	Masked   bool   `json:"masked"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

type sendResponse struct {
	Status string `json:"status"` // "sent" on success
	Error  string `json:"error,omitempty"`
}

// SendSMS posts one message to the dispatch server using the tenant's own
// provider credentials.
func (c *SMSClient) SendSMS(ctx context.Context, gw *entity.SMSGateway, phone, message string) error {
	if c.baseURL == "" {
		log.Debug().Str("phone", phone).Msg("sms dispatch simulated (no gateway URL)")
		return nil
	}

	body, err := json.Marshal(sendRequest{
		Provider: gw.Provider,
		APIKey:   gw.APIKey,
		SenderID: gw.SenderID,
		Masked:   gw.Masked,
		Phone:    phone,
		Message:  message,
	})
	if err != nil {
		return fmt.Errorf("sms: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/sms", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms: %w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("sms: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms: gateway returned %d: %s", resp.StatusCode, raw)
	}

	var out sendResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("sms: decode response: %w", err)
	}
	if out.Status != "sent" {
		return fmt.Errorf("sms: dispatch rejected: %s", out.Error)
	}
	return nil
}
