package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/k-hirata/defstore/internal/database"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dictionary location and entry count",
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

			count, err := store.Count(ctx)
			if err != nil {
				return fmt.Errorf("store.Count > %w", err)
			}

			location := "in-memory"
			if cfg.Database.Directory != "" {
				location = filepath.Join(cfg.Database.Directory, database.FileName)
			}
			cmd.Printf("database: %s\nentries: %d\n", location, count)
			return nil
		},
	}
}
