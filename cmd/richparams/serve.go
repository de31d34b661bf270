package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-richparams/internal/console"
	"github.com/goliatone/go-richparams/internal/logx"
	"github.com/goliatone/go-richparams/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the template variables form over HTTP",
	Long: `Loads the template variables from --source and serves them under
/templates/{template-id}/variables. A random template id is generated when
--template-id is not set.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	templateID, err := cfg.ParsedTemplateID()
	if err != nil {
		return err
	}
	if templateID == uuid.Nil {
		templateID = uuid.New()
	}

	variables, err := loadParameters(cmd.Context())
	if err != nil {
		return err
	}
	catalog := console.NewCatalog()
	catalog.Put(templateID, variables)

	metrics.Register(prometheus.DefaultRegisterer)
	handler := console.New(catalog,
		console.WithReadOnly(cfg.ReadOnly),
		console.WithShowOptions(cfg.ShowOptions),
		console.WithAllowedOrigins(cfg.AllowedOrigins...),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logx.Log.Info().
			Str("addr", srv.Addr).
			Str("form", "/templates/"+templateID.String()+"/variables").
			Msg("console listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-shutdown:
		logx.Log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logx.Log.Error().Err(err).Dur("timeout", shutdownTimeout).Msg("graceful shutdown did not complete")
			return srv.Close()
		}
		return nil
	}
}
