package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
)

// awardRequest is the POST body for /api/arcade/award.
type awardRequest struct {
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// balanceResponse is the GET response from /api/arcade/balance.
type balanceResponse struct {
	Balance int `json:"balance"`
}

// HTTPClient talks to the Pocket Bounty host API with bearer token
// auth.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTP creates a live wallet client. An expired token is flagged at
// construction time so a stale credential warns up front instead of
// failing on the first award.
func NewHTTP(cfg config.WalletConfig) *HTTPClient {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wallet",
	})

	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
	c.warnBadToken()
	return c
}

// warnBadToken logs when the configured token is missing or carries an
// expiry claim in the past. Signature verification is the host's job.
func (c *HTTPClient) warnBadToken() {
	if c.token == "" {
		c.logger.Warn("no API token configured, award calls will be rejected")
		return
	}
	if exp, ok := tokenExpiry(c.token); ok && exp.Before(time.Now()) {
		c.logger.Warn("API token looks expired", "expired_at", exp)
	}
}

// tokenExpiry extracts the expiry claim from a JWT without verifying
// the signature. ok is false for opaque tokens and tokens without an
// expiry claim.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Award credits points to the wallet. One attempt, no retry.
func (c *HTTPClient) Award(ctx context.Context, points int, reason string) error {
	if points <= 0 {
		return nil
	}

	body, err := json.Marshal(awardRequest{Points: points, Reason: reason})
	if err != nil {
		return fmt.Errorf("wallet: cannot encode award: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/arcade/award", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("wallet: cannot build award request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("wallet: award call failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		return fmt.Errorf("wallet: award rejected: %s", resp.Status)
	}

	c.logger.Info("points awarded", "points", points, "reason", reason)
	return nil
}

// Balance fetches the current wallet balance.
func (c *HTTPClient) Balance(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/arcade/balance", nil)
	if err != nil {
		return 0, fmt.Errorf("wallet: cannot build balance request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("wallet: balance call failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return 0, ErrUnauthorized
	case resp.StatusCode >= 400:
		return 0, fmt.Errorf("wallet: balance rejected: %s", resp.Status)
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("wallet: cannot decode balance: %w", err)
	}
	return out.Balance, nil
}
