package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/api"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).
Wallet awards use the server's wallet configuration.

With --http, a read-only HTTP sidecar serves the leaderboard, game
stats and Prometheus metrics.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pocketbounty/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --http :8080              # Also serve the HTTP API
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP sidecar address (empty = disabled)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	store := openStoreOrWarn()
	client := openWallet()

	sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, store, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	errCh := make(chan error, 2)

	go func() {
		errCh <- sshServer.ListenAndServe()
	}()

	var apiServer *api.Server
	if flagHTTPAddr != "" {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Warning: HTTP API disabled, no scores database")
		} else {
			apiServer = api.NewServer(flagHTTPAddr, store)
			go func() {
				errCh <- apiServer.ListenAndServe()
			}()
		}
	}

	fmt.Printf("Starting arcade SSH server on %s\n", flagSSHAddr)
	if apiServer != nil {
		fmt.Printf("HTTP API on %s\n", flagHTTPAddr)
	}
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		fmt.Println("\nShutting down...")
	case serveErr := <-errCh:
		if serveErr != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sshServer.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "SSH shutdown: %v\n", err)
	}
	if apiServer != nil {
		if err := apiServer.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "HTTP shutdown: %v\n", err)
		}
	}
	if store != nil {
		store.Close()
	}
}
