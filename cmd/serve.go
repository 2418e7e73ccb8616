package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for the browser form",
	Long: `Run the HTTP API the browser form calls for milestones, classification,
previews, AI enhancement, and exports. The server keeps no state.

AI enhancement answers 503 when no API key is configured; everything else
works without one.

Example:
  resume-builder serve
  resume-builder serve --addr 127.0.0.1:3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	if !getVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	var enhancer llm.Enhancer
	enhancer, err = llm.NewEnhancer(context.Background(), cfg.EnhancerOptions())
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Warn().Str("provider", cfg.Provider).Msg("no API key configured, AI enhancement disabled")
		err = nil
	case err != nil:
		err = errors.Wrap(err, "failed to create enhancer")
		return err
	}

	srv := server.New(server.Deps{
		Enhancer: enhancer,
		Exporter: export.NewExporter(),
		Logger:   logger,
	}).HTTPServer(addr)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("server listening")
		listenErr := srv.ListenAndServe()
		if listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
			serveErr <- listenErr
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err = <-serveErr:
		if err != nil {
			err = errors.Wrap(err, "server failed")
		}
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(ctx)
	if err != nil {
		err = errors.Wrap(err, "server forced to shutdown")
		return err
	}

	logger.Info().Msg("server exited")
	return err
}
