// Package wallet connects arcade sessions to the Pocket Bounty wallet:
// finished games award points through it and the menu shows the current
// balance. Awards are single attempts; the caller records the outcome.
package wallet

import (
	"context"
	"errors"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
)

// ErrUnauthorized means the host rejected the bearer token.
var ErrUnauthorized = errors.New("wallet: unauthorized")

// Client credits points and reports the current balance.
type Client interface {
	Award(ctx context.Context, points int, reason string) error
	Balance(ctx context.Context) (int, error)
}

// New picks the wallet implementation for the given configuration.
// Demo mode, or a missing API URL, gets the in-memory demo wallet;
// anything else talks to the host API over HTTP.
func New(cfg config.WalletConfig) Client {
	if cfg.Demo || cfg.APIURL == "" {
		return NewDemo(cfg.DemoBalance)
	}
	return NewHTTP(cfg)
}
