package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k-hirata/defstore/internal/cli"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <word>",
		Short: "Look up definitions for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := openStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("openStore > %w", err)
			}

			return cli.NewSearchCLI(store, cmd.OutOrStdout()).Run(ctx, args[0])
		},
	}
}
