package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamedex/internal/lookup"
	"gamedex/internal/twitchauth"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Credential cache utilities",
	}

	tokenCmd.AddCommand(newTokenRefreshCommand(ctx))
	tokenCmd.AddCommand(newTokenShowCommand(ctx))

	return tokenCmd
}

func newTokenRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Mint a fresh credential and replace the cached one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			session, err := lookup.NewSession(cfg, logger)
			if err != nil {
				return err
			}
			if err := session.Refresh(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed credential cache at %s\n", cfg.Paths.TokenCache)
			return nil
		},
	}
}

func newTokenShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Report the credential cache location and state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// The token value itself is never printed.
			_, found, err := twitchauth.NewFileStore(cfg.Paths.TokenCache).Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Credential cache: %s\n", cfg.Paths.TokenCache)
			if found {
				fmt.Fprintln(out, "State: credential present")
			} else {
				fmt.Fprintln(out, "State: no cached credential (one will be minted on first lookup)")
			}
			return nil
		},
	}
}
