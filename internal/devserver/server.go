package devserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// BindError is returned when the listening socket cannot be acquired,
// e.g. because the port is already in use.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("cannot listen on %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Server serves a document root over HTTP with CORS headers and no access log.
type Server struct {
	cfg Config
	out io.Writer
	srv *http.Server
	ln  net.Listener
}

// New creates a server for cfg. The banner and shutdown message go to out.
// cfg.Root must already be resolved.
func New(cfg Config, out io.Writer) *Server {
	return &Server{
		cfg: cfg,
		out: out,
		srv: &http.Server{
			Handler: NewHandler(cfg.Root),
			// net/http reports connection-level failures here; keep them quiet.
			ErrorLog: log.New(io.Discard, "", 0),
		},
	}
}

// Listen binds the TCP listener. It returns a *BindError on failure.
func (s *Server) Listen() error {
	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return &BindError{Addr: addr, Err: err}
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// URL returns the address users should open in a browser.
func (s *Server) URL() string {
	port := s.cfg.Port
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// Serve runs the accept loop on the bound listener until ctx is cancelled.
// Cancellation is a clean stop and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("serve called before listen")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving %s: %w", s.ln.Addr(), err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		// In-flight connections are dropped, not drained.
		s.srv.Close()
		return nil
	})
	return g.Wait()
}

// Run binds (unless Listen was already called), prints the startup banner,
// serves until ctx is cancelled and then prints the shutdown message.
func (s *Server) Run(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	PrintBanner(s.out, s.cfg.Name, s.URL())

	if err := s.Serve(ctx); err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Server stopped.")
	return nil
}
