package main

import (
	"context"
	"fmt"
	"sellerscheck/internal/config"
	"sellerscheck/internal/report"
	"sellerscheck/pkg/logger"
	"sellerscheck/pkg/storage"
	"sellerscheck/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// postgresConnector returns a report.Connector opening a single-connection
// PostgreSQL storage with the configured parameters.
func postgresConnector(cfg *config.Config) report.Connector {
	return func(ctx context.Context) (storage.Storage, error) {
		pgsql, err := postgres.New(ctx, postgres.Options{
			Username:       cfg.Database.Username,
			Password:       cfg.Database.Password,
			Host:           cfg.Database.Host,
			Port:           cfg.Database.Port,
			Database:       cfg.Database.DatabaseName,
			SslMode:        cfg.Database.SslMode,
			ConnectTimeout: cfg.Database.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}

		return pgsql, nil
	}
}

// checkCommand constructs the root command. It takes no arguments: the
// connection parameters and the domain list come from configuration, and
// flags only override them.
func checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sellerscheck",
		Short:         "Prints the sellers.json fetch status of the configured seller domains",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			domains, _ := cmd.Flags().GetStringSlice("domain")
			verbose, _ := cmd.Flags().GetBool("verbose")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			if err := logger.Setup(cfg.Environment, verbose); err != nil {
				return err
			}
			if len(domains) > 0 {
				cfg.Report.Domains = domains
			}

			ctx := cmd.Context()
			r := report.New(postgresConnector(cfg), report.Options{
				Title:   cfg.Report.Title,
				Domains: cfg.Report.Domains,
			})

			if _, err := r.Run(ctx, cmd.OutOrStdout()); err != nil {
				logger.Error(ctx, "status check failed", zap.Error(err))
				_ = report.PrintFailure(cmd.OutOrStdout(), err, report.Hints{
					ProxyInstance: cfg.Proxy.InstanceConnectionName,
					ProxyPort:     cfg.Database.Port,
				})

				return err
			}

			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Config file path (optional)")
	cmd.Flags().StringSlice("domain", nil, "Seller domain to check; repeat to check several (overrides config)")
	cmd.Flags().BoolP("verbose", "v", false, "Log debug information to stderr")

	return cmd
}
