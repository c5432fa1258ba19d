// casegen is the test-case generation backend: it accepts requirements text
// (typed or extracted from an uploaded document), asks a configured AI
// provider for structured test cases, and serves the results with accounts,
// history, and spreadsheet export.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/casegen-ai/casegen/internal/ai"
	"github.com/casegen-ai/casegen/internal/auth"
	"github.com/casegen-ai/casegen/internal/config"
	"github.com/casegen-ai/casegen/internal/server"
	"github.com/casegen-ai/casegen/internal/store"
)

var version = "dev"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	rootCmd := &cobra.Command{
		Use:     "casegen",
		Short:   "AI test-case generation backend",
		Long:    "Web backend that turns software requirements into structured, exportable test cases using interchangeable AI providers.",
		Version: version,
	}
	rootCmd.AddCommand(serveCmd(), initdbCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()

			st, closer, err := openStore(cfg)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer()
			}

			registry := ai.NewRegistry(cfg.Credentials)
			generator := ai.NewGenerator(registry, cfg.GenerateTimeout)
			sessions := auth.NewSessions(st, st, cfg.TokenExpiry)
			srv := server.New(st, sessions, generator, cfg.MaxUploadBytes)

			ctx, cancel := context.WithCancel(context.Background())
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			go func() { <-sigs; cancel() }()

			providers := registry.Available()
			log.Info().
				Int("providers", len(providers)).
				Str("default", registry.Default()).
				Msg("provider registry ready")

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.Run(ctx, ":"+cfg.Port) })
			g.Go(func() error { return sweepSessions(ctx, sessions) })
			return g.Wait()
		},
	}
}

func initdbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if cfg.DatabaseDSN == "" {
				return fmt.Errorf("DATABASE_DSN is not set")
			}
			db, err := store.OpenMySQL(cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.InitSchema(cmd.Context()); err != nil {
				return err
			}
			log.Info().Msg("database schema ready")
			return nil
		},
	}
}

// openStore picks MySQL when a DSN is configured, otherwise the in-memory
// store (demo deployments lose data on restart).
func openStore(cfg config.Config) (store.Store, func() error, error) {
	if cfg.DatabaseDSN == "" {
		log.Warn().Msg("DATABASE_DSN not set, using in-memory store")
		return store.NewMemory(), nil, nil
	}
	db, err := store.OpenMySQL(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.InitSchema(context.Background()); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, db.Close, nil
}

// sweepSessions periodically removes expired sessions.
func sweepSessions(ctx context.Context, sessions *auth.Sessions) error {
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			n, err := sessions.Sweep(ctx)
			if err != nil {
				log.Error().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("removed", n).Msg("expired sessions swept")
			}
		}
	}
}
