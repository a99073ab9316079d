package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fwojciec/callscore"
	"github.com/fwojciec/callscore/chi"
	"github.com/fwojciec/callscore/html"
	"github.com/fwojciec/callscore/session"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command until the context is cancelled or the
// process receives SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config.Override("", 0, "", c.Addr)

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %v\n", cfg.Server.Addr, err)
		return callscore.Errorf(callscore.EINVALID, "cannot listen on %s: %v", cfg.Server.Addr, err)
	}

	view := chi.NewView()
	s := session.New(deps.Extractor, deps.Analyzer, view)
	srv := &http.Server{
		Handler:           chi.NewServer(s, view, html.NewPresenter(), deps.Logger),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Serving on http://%s (analysis service %s)\n", ln.Addr(), cfg.Endpoint)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
