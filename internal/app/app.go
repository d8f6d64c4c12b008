package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/question-scorer/internal/transport/mcptool"
	"github.com/heartmarshall/question-scorer/internal/transport/middleware"
	"github.com/heartmarshall/question-scorer/internal/transport/rest"
)

// Run is the HTTP entry point. It wires the components, serves the JSON API
// and shuts the server down gracefully when ctx is cancelled.
func Run(ctx context.Context) error {
	c, err := Bootstrap()
	if err != nil {
		return err
	}

	cfg := c.Config
	c.Logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("provider", c.Provider),
		slog.Int("max_calls", c.Budget.Ceiling()),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Handler:      NewHandler(c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	c.Logger.Info("http server listening", slog.String("addr", ln.Addr().String()))

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, c.Logger)
}

// NewHandler builds the HTTP router over c.
func NewHandler(c *Components, limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logger:      c.Logger,
		CORS:        c.Config.CORS,
		TrustProxy:  c.Config.Server.TrustProxy,
		RateLimiter: limiter,
		PerMinute:   c.Config.RateLimit.PerMinute,
		Health:      rest.NewHealthHandler(c.Budget, c.Provider, Version),
		Rubric:      rest.NewRubricHandler(c.Ranks, c.Budget),
		Evaluation:  rest.NewEvaluationHandler(c.Service, c.Logger),
	})
}

// serve runs srv on ln until ctx is done, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, log *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// RunMCP serves the scoring tools over stdio until the host closes the
// stream.
func RunMCP(_ context.Context) error {
	c, err := Bootstrap()
	if err != nil {
		return err
	}

	c.Logger.Info("starting mcp server",
		slog.String("version", BuildVersion()),
		slog.String("provider", c.Provider),
		slog.Int("max_calls", c.Budget.Ceiling()),
	)

	s := mcptool.NewServer(c.Service, c.Ranks, c.Budget, Version)
	return mcpserver.ServeStdio(s)
}
