package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/uber/polysync/src/internal/wsstream"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Supported transports.
const (
	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

// Server serves a jsonrpc2.Handler on a listener until stopped.
type Server struct {
	handler   jsonrpc2.Handler
	transport string
	logger    *zap.SugaredLogger

	ln     net.Listener
	http   *http.Server
	ctx    context.Context
	cancel context.CancelFunc
	served chan struct{}
	conns  sync.WaitGroup
}

// NewServer returns a Server for the given transport.
func NewServer(handler jsonrpc2.Handler, transport string, logger *zap.SugaredLogger) (*Server, error) {
	if transport != TransportTCP && transport != TransportWebSocket {
		return nil, fmt.Errorf("unsupported transport %q, expected %q or %q", transport, TransportTCP, TransportWebSocket)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		handler:   handler,
		transport: transport,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		served:    make(chan struct{}),
	}, nil
}

// Start begins serving ln in the background.
func (s *Server) Start(ln net.Listener) {
	s.ln = ln
	if s.transport == TransportWebSocket {
		upgrader := wsstream.NewUpgrader()
		s.http = &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.conns.Add(1)
			defer s.conns.Done()

			stream, err := upgrader.Upgrade(w, r)
			if err != nil {
				s.logger.Warnw("websocket upgrade failed", "error", err)
				return
			}
			s.ServeStream(s.ctx, jsonrpc2.NewConn(stream))
		})}
	}

	go func() {
		defer close(s.served)

		var err error
		if s.http != nil {
			err = s.http.Serve(ln)
		} else {
			err = s.acceptTCP(ln)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
			s.logger.Errorw("serving stopped", "error", err)
		}
	}()
	s.logger.Infow("conversion service listening", "address", ln.Addr().String(), "transport", s.transport)
}

func (s *Server) acceptTCP(ln net.Listener) error {
	for {
		nc, err := ln.Accept()
		if err != nil {
			return err
		}

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.ServeStream(s.ctx, jsonrpc2.NewConn(jsonrpc2.NewStream(nc)))
		}()
	}
}

// ServeStream serves one connection until the peer disconnects or the server stops.
func (s *Server) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	conn.Go(ctx, s.handler)
	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	}
	return conn.Err()
}

// Stop closes the listener and every open connection.
func (s *Server) Stop(ctx context.Context) error {
	s.cancel()
	if s.ln == nil {
		return nil
	}

	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	} else if closeErr := s.ln.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		err = closeErr
	}

	select {
	case <-s.served:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.conns.Wait()
	return err
}
