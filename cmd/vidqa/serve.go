package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	HTTPAdapter "github.com/bnema/vidqa/internal/adapter/http"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/service"
)

const drainTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		n, err := a.orch.FailInterrupted()
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Warn.Printf("marked %d interrupted analyses as failed", n)
		}

		authSvc := service.NewAuthService(cfg.APITokenHash)
		if !authSvc.Enabled() {
			logger.Warn.Printf("API_TOKEN_HASH not set, /api is unauthenticated")
		}

		server := HTTPAdapter.NewServer(a.orch, a.media, a.events, authSvc, HTTPAdapter.ServerConfig{
			MaxUploadBytes: cfg.MaxUploadBytes(),
			BehindProxy:    cfg.BehindProxy,
			Version:        version,
		})
		defer server.Close()

		addr := fmt.Sprintf(":%d", cfg.Port)
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           server,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       5 * time.Minute,
			IdleTimeout:       120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info.Printf("vidqa %s listening on %s", version, addr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-cmd.Context().Done():
		}

		logger.Info.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()

		// SSE streams never end on their own, so Shutdown may time out.
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn.Printf("http shutdown: %v", err)
			_ = httpServer.Close()
		}

		drained := make(chan struct{})
		go func() {
			a.orch.Wait()
			close(drained)
		}()
		select {
		case <-drained:
		case <-shutdownCtx.Done():
			logger.Warn.Printf("analyses still running at exit will be failed on next start")
		}

		logger.Info.Printf("shutdown complete")
		return nil
	},
}
