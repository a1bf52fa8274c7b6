package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/wallet"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the Pocket Bounty wallet balance",
	Long: `Fetch and display the current wallet balance.

In demo mode this is the local demo balance. With an API configured
(POCKET_BOUNTY_API_URL and POCKET_BOUNTY_API_TOKEN, or the wallet
section of the config file), the balance comes from the live wallet.

Examples:
  arcade balance
  arcade balance --demo`,
	Args: cobra.NoArgs,
	Run:  runBalance,
}

func runBalance(_ *cobra.Command, _ []string) {
	client := openWallet()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	balance, err := client.Balance(ctx)
	if err != nil {
		if errors.Is(err, wallet.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Error: wallet rejected the API token. Check POCKET_BOUNTY_API_TOKEN.")
		} else {
			fmt.Fprintf(os.Stderr, "Error fetching balance: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Wallet balance: %d pts\n", balance)
}
