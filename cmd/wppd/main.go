package main

import (
	"fmt"
	"os"

	"github.com/matheus3301/wppsearch/internal/daemon"
	"github.com/matheus3301/wppsearch/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	var sessionFlag, configFlag string

	rootCmd := &cobra.Command{
		Use:           "wppd",
		Short:         "Session daemon: ingests WhatsApp messages and serves background search",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionName, err := session.Resolve(sessionFlag)
			if err != nil {
				return err
			}
			app := fx.New(
				daemon.Module(daemon.Params{SessionName: sessionName, ConfigPath: configFlag}),
				fx.NopLogger,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	rootCmd.Flags().StringVar(&sessionFlag, "session", "", "session name (overrides config default)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "config file (default ~/.wpp/config.toml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
