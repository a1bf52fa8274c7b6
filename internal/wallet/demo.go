package wallet

import (
	"context"
	"sync"
)

// DemoWallet is an in-memory wallet for offline play. Awards mutate a
// local balance and nothing leaves the process.
type DemoWallet struct {
	mu      sync.Mutex
	balance int
}

// NewDemo creates a demo wallet with the given starting balance.
func NewDemo(startingBalance int) *DemoWallet {
	return &DemoWallet{balance: startingBalance}
}

// Award credits points to the in-memory balance.
func (d *DemoWallet) Award(ctx context.Context, points int, reason string) error {
	if points <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.balance += points
	return nil
}

// Balance returns the in-memory balance.
func (d *DemoWallet) Balance(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.balance, nil
}
