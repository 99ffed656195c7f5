package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/app"
	"github.com/fsdevblog/shortlinks/internal/bmeta"
	"github.com/fsdevblog/shortlinks/internal/config"
)

type rootFlags struct {
	configFile string
	envFile    string
	overrides  config.Config
}

func newRootCmd(meta bmeta.Info) *cobra.Command {
	return buildRootCmd(meta, new(rootFlags))
}

func buildRootCmd(meta bmeta.Info, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shortener",
		Short:         "URL shortener with visit statistics",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.LoadConfig(config.LoadOptions{
				ConfigFile: flags.configFile,
				EnvFile:    flags.envFile,
				ApplyFlags: func(c *config.Config) { applyChangedFlags(cmd, flags, c) },
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			ctx := cmd.Context()
			a, err := app.New(ctx, *conf)
			if err != nil {
				return err //nolint:wrapcheck
			}
			a.Logger.Info("Starting server",
				zap.String("version", meta.Version),
				zap.String("address", conf.ServerAddress),
				zap.String("storage", string(conf.StorageType)),
			)
			if runErr := a.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr //nolint:wrapcheck
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "path to YAML config file")
	f.StringVar(&flags.envFile, "env-file", ".env", "path to .env file, skipped if missing")
	f.StringVarP(&flags.overrides.ServerAddress, "address", "a", "", "server address host:port")
	f.StringVarP(&flags.overrides.BaseURL, "base-url", "b", "",
		"base address of short links (defaults to Scheme://Host of the request)")
	f.StringVarP((*string)(&flags.overrides.StorageType), "storage", "s", "", "storage type: inMemory, sqlite, postgres")
	f.StringVar(&flags.overrides.SQLitePath, "sqlite-path", "", "sqlite database file")
	f.StringVarP(&flags.overrides.DatabaseDSN, "database-dsn", "d", "", "postgres DSN")
	f.DurationVar(&flags.overrides.RequestTimeout, "request-timeout", 0, "per request timeout")
	f.StringVar(&flags.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd(meta))
	return cmd
}

// applyChangedFlags переносит в конфиг только явно заданные флаги, чтобы пустые
// значения по умолчанию не затирали YAML и default-теги.
func applyChangedFlags(cmd *cobra.Command, flags *rootFlags, c *config.Config) {
	f := cmd.Flags()
	o := flags.overrides
	if f.Changed("address") {
		c.ServerAddress = o.ServerAddress
	}
	if f.Changed("base-url") {
		c.BaseURL = o.BaseURL
	}
	if f.Changed("storage") {
		c.StorageType = o.StorageType
	}
	if f.Changed("sqlite-path") {
		c.SQLitePath = o.SQLitePath
	}
	if f.Changed("database-dsn") {
		c.DatabaseDSN = o.DatabaseDSN
	}
	if f.Changed("request-timeout") {
		c.RequestTimeout = o.RequestTimeout
	}
	if f.Changed("log-level") {
		c.LogLevel = o.LogLevel
	}
}
