package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/matheus3301/wppsearch/internal/session"
	"github.com/matheus3301/wppsearch/internal/tui"
	"github.com/matheus3301/wppsearch/internal/tui/client"
	"github.com/spf13/cobra"
)

func main() {
	var sessionFlag string
	var noStart bool

	rootCmd := &cobra.Command{
		Use:           "wpptui",
		Short:         "Search messages as you type",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionName, err := session.Resolve(sessionFlag)
			if err != nil {
				return err
			}
			socketPath := session.SocketPath(sessionName)

			// Check daemon health; auto-start if needed.
			if !probeDaemon(socketPath) {
				if noStart {
					return fmt.Errorf("daemon not running for session %q", sessionName)
				}
				fmt.Fprintf(os.Stderr, "daemon not running for session %q, starting...\n", sessionName)
				if err := startDaemon(sessionName); err != nil {
					return fmt.Errorf("failed to start daemon: %w", err)
				}
				if !waitForDaemon(socketPath, 10*time.Second) {
					return fmt.Errorf("daemon did not become ready")
				}
			}

			c, err := client.New(socketPath)
			if err != nil {
				return fmt.Errorf("connect to daemon: %w", err)
			}
			defer func() { _ = c.Close() }()

			return tui.NewApp(c, sessionName).Run()
		},
	}
	rootCmd.Flags().StringVar(&sessionFlag, "session", "", "session name (overrides config default)")
	rootCmd.Flags().BoolVar(&noStart, "no-start", false, "fail instead of starting wppd")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// probeDaemon checks if a daemon is running and responsive on the socket.
func probeDaemon(socketPath string) bool {
	c, err := client.New(socketPath)
	if err != nil {
		return false
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = c.GetStatus(ctx)
	return err == nil
}

func startDaemon(sessionName string) error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}
	wppd := filepath.Join(filepath.Dir(executable), "wppd")

	if _, err := os.Stat(wppd); err != nil {
		wppd = "wppd"
	}

	cmd := exec.Command(wppd, "--session", sessionName)
	// Inherit stderr so daemon startup errors are visible.
	cmd.Stderr = os.Stderr
	return cmd.Start()
}

// waitForDaemon polls GetStatus rather than the socket so a half-started
// daemon is not mistaken for a ready one.
func waitForDaemon(socketPath string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if probeDaemon(socketPath) {
			return true
		}
		time.Sleep(300 * time.Millisecond)
	}
	return false
}
