package main

import (
	"context"
	"marketplace/internal/config"
	"marketplace/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// autoCloseCommand constructs the 'autoclose' subcommand that runs one
// auto-close sweep and exits. It is meant for external schedulers.
func autoCloseCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoclose",
		Short: "Closes stale OPEN incidences once",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			c, closeCache := getCache(ctx, cfg)
			defer closeCache()

			closed, err := getModeration(ctx, cfg, pgsql, c).AutoClose(ctx)
			if err != nil {
				logger.Error(ctx, "auto-close sweep failed", zap.Int64("closed", closed), zap.Error(err))

				return
			}

			logger.Info(ctx, "auto-close sweep finished", zap.Int64("closed", closed))
		},
	}

	return cmd
}
