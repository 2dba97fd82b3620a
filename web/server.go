package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/oopsididitagain335/futurecommon/config"
	"github.com/oopsididitagain335/futurecommon/intake"
	"github.com/oopsididitagain335/futurecommon/model"
	"github.com/oopsididitagain335/futurecommon/registry"
)

// Notifier delivers an eligible application to the review channel. A nil
// return means delivery is confirmed and the application may be registered
// as pending.
type Notifier interface {
	Notify(sub model.Submission, appID string, d intake.Decision) error
}

// Server is the public form-facing HTTP server.
type Server struct {
	cfg      config.Server
	policy   intake.Policy
	notifier Notifier
	registry *registry.Registry
	log      *zap.Logger
	srv      *http.Server
}

func NewServer(cfg config.Server, policy intake.Policy, notifier Notifier, reg *registry.Registry, log *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		policy:   policy,
		notifier: notifier,
		registry: reg,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/submit", rateLimit(cfg.RateLimit)(http.HandlerFunc(s.handleSubmit)))

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown", zap.Error(err))
		}
	}()

	s.log.Info("server listening", zap.String("addr", s.cfg.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
