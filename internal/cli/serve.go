package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"board-service/internal/config"
	"board-service/internal/delivery/rest"
	"board-service/internal/infrastructure/db/postgres"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(v)
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cfg)

			db, err := openDatabase(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDatabase(db)
			if err := postgres.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			deps, err := newApp(ctx, cfg, db, logger)
			if err != nil {
				return err
			}
			defer deps.close()

			health := func(ctx context.Context) error { return postgres.Ping(ctx, db) }
			server := rest.NewServer(deps.services, health, logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start(cfg.HTTPAddr)
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "listen address (env HTTP_ADDR)")
	bindFlag(v, cmd, config.KeyHTTPAddr, "addr")
	return cmd
}
