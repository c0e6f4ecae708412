package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/leanbot/internal/server"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd runs the player server
type ServeCmd struct {
	Addr string `help:"Listen address, overrides the config file (e.g. :9090)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	policy, err := newPolicy(cfg, logger)
	if err != nil {
		return err
	}

	addr := cfg.ListenAddress()
	if c.Addr != "" {
		addr = c.Addr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := server.New(policy, cfg.Bot.Version, logger)
	logger.Info("Starting leanbot",
		"addr", ln.Addr().String(),
		"name", cfg.Bot.Name,
		"version", cfg.Bot.Version,
		"ranker", cfg.Bot.Ranker,
	)

	ctx, stop := signalContext(context.Background(), logger)
	defer stop()
	return serve(ctx, ln, srv, logger)
}

// serve runs srv on ln until ctx is done or the listener fails.
func serve(ctx context.Context, ln net.Listener, srv *server.Server, logger *log.Logger) error {
	httpServer := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Close()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
