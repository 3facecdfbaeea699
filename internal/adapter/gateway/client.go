package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/spinzone/backend/internal/domain/model"
)

const transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

// StatusError represents an unexpected HTTP status from the gateway.
type StatusError struct {
	Code int
	Body string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("gateway responded %d: %s", e.Code, e.Body)
}

// Client exposes the payment gateway operations used by checkout.
type Client interface {
	Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (*model.GatewayTransaction, error)
	Commit(ctx context.Context, token string) (*model.GatewayTransaction, error)
	Status(ctx context.Context, token string) (*model.GatewayTransaction, error)
}

// HTTPClient implements Client against the gateway's REST API.
type HTTPClient struct {
	env        Environment
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type createRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type createResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// transactionResponse mirrors the JSON payload of commit and status replies.
type transactionResponse struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// NewHTTPClient creates the gateway client for the resolved environment. An
// override base URL replaces the environment's default, used in tests.
func NewHTTPClient(env Environment, overrideBaseURL string, logger *slog.Logger) (*HTTPClient, error) {
	base := env.BaseURL
	if overrideBaseURL != "" {
		base = overrideBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		env:     env,
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Create registers a new transaction and returns the redirect token and URL.
func (c *HTTPClient) Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (*model.GatewayTransaction, error) {
	payload, err := json.Marshal(createRequest{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		ReturnURL: returnURL,
	})
	if err != nil {
		return nil, err
	}

	var data createResponse
	if err := c.do(ctx, http.MethodPost, transactionsPath, bytes.NewReader(payload), &data); err != nil {
		return nil, err
	}

	return &model.GatewayTransaction{
		Token:    data.Token,
		URL:      data.URL,
		Status:   model.GatewayStatusInitialized,
		BuyOrder: buyOrder,
		Amount:   amount,
	}, nil
}

// Commit finalizes a previously created transaction and returns its
// authorization outcome.
func (c *HTTPClient) Commit(ctx context.Context, token string) (*model.GatewayTransaction, error) {
	return c.transaction(ctx, http.MethodPut, token)
}

// Status queries the current state of a transaction without finalizing it.
func (c *HTTPClient) Status(ctx context.Context, token string) (*model.GatewayTransaction, error) {
	return c.transaction(ctx, http.MethodGet, token)
}

func (c *HTTPClient) transaction(ctx context.Context, method, token string) (*model.GatewayTransaction, error) {
	var data transactionResponse
	if err := c.do(ctx, method, transactionsPath+"/"+url.PathEscape(token), nil, &data); err != nil {
		return nil, err
	}
	return &model.GatewayTransaction{
		Token:    token,
		Status:   model.GatewayStatus(data.Status),
		BuyOrder: data.BuyOrder,
		Amount:   data.Amount,
	}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	endpoint := *c.baseURL
	endpoint.Path += path

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Tbk-Api-Key-Id", c.env.CommerceCode)
	req.Header.Set("Tbk-Api-Key-Secret", c.env.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gateway request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return json.Unmarshal(raw, out)
}
