package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/cpeele00/employee-benefits/internal/datasource"
	"github.com/cpeele00/employee-benefits/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculation HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				opts.cfg.Server.Port = port
			}

			timeout, err := opts.cfg.DataSourceTimeout()
			if err != nil {
				return err
			}
			source := datasource.NewHTTPSource(opts.cfg.DataSource.URL, datasource.WithTimeout(timeout))
			h := handler.New(source, opts.logger, 2*timeout)

			server := &fasthttp.Server{
				Handler:      h.Handle,
				Name:         "employee-benefits",
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				opts.logger.Info("benefits service starting",
					zap.String("port", opts.cfg.Server.Port),
					zap.String("data_source", opts.cfg.DataSource.URL),
				)
				errCh <- server.ListenAndServe(":" + opts.cfg.Server.Port)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			opts.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.ShutdownWithContext(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
