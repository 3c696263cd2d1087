// Package jsonrpcfx serves the inbound JSON-RPC endpoint that UI clients connect to.
package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/polysync/src/polysync/internal/serverinfofile"
	"github.com/uber/polysync/src/internal/wsstream"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyJSONRPC = "jsonrpc"
	_configKeyAddress = "jsonrpc.address"

	_outputKeyAddress   = "ui-address"
	_outputKeyTransport = "ui-transport"
)

// Supported transports for the inbound endpoint.
const (
	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

// Module is an fx module to handle JSON-RPC requests.
var Module = fx.Provide(New)

// JSONRPCModule represents a module to manage JSON-RPC requests.
type JSONRPCModule interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	ServeStream(ctx context.Context, conn jsonrpc2.Conn) error
	RegisterConnectionManager(connectionManager ConnectionManager) error
	// URL returns the address clients should dial, once the module has started.
	URL() string
}

// Router serves as the interface through which handling of requests will be implemented.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager will manage each active connection and its corresponding Router throughout the lifecycle of a connection.
type ConnectionManager interface {
	NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

// Config is read from the "jsonrpc" config key.
type Config struct {
	Address   string `yaml:"address"`
	Transport string `yaml:"transport"`
}

type module struct {
	cfg Config

	connectionMgr  ConnectionManager
	ln             net.Listener
	server         *http.Server
	upgrader       *wsstream.Upgrader
	logger         *zap.SugaredLogger
	serverInfoFile serverinfofile.ServerInfoFile

	// ctx is canceled on stop and closes every open connection.
	ctx    context.Context
	cancel context.CancelFunc
	served chan struct{}
	conns  sync.WaitGroup
}

// Params define values to be used by the JSON-RPC module.
type Params struct {
	fx.In

	Config         config.Provider
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
}

// New creates a new server to handle JSON-RPC requests on the configured address and transport.
func New(p Params) (JSONRPCModule, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := newModule(p.Logger, p.ServerInfoFile)
	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.OnStop,
	})

	return m, nil
}

func newModule(logger *zap.SugaredLogger, serverInfoFile serverinfofile.ServerInfoFile) *module {
	ctx, cancel := context.WithCancel(context.Background())
	return &module{
		logger:         logger,
		serverInfoFile: serverInfoFile,
		upgrader:       wsstream.NewUpgrader(),
		ctx:            ctx,
		cancel:         cancel,
		served:         make(chan struct{}),
	}
}

// OnStart will open the listener, publish its address and then begin handling incoming connections.
func (m *module) OnStart(ctx context.Context) error {
	if err := m.setup(); err != nil {
		return err
	}

	if m.serverInfoFile != nil {
		if err := m.serverInfoFile.UpdateField(_outputKeyAddress, m.URL()); err != nil {
			m.ln.Close()
			return err
		}
		if err := m.serverInfoFile.UpdateField(_outputKeyTransport, m.cfg.Transport); err != nil {
			m.ln.Close()
			return err
		}
	}

	go m.start()
	return nil
}

// OnStop closes the listener and every open connection, then waits for the serving goroutines to return.
func (m *module) OnStop(ctx context.Context) error {
	m.cancel()
	if m.ln == nil {
		return nil
	}

	var err error
	if m.server != nil {
		err = m.server.Shutdown(ctx)
	} else {
		err = m.ln.Close()
		if errors.Is(err, net.ErrClosed) {
			err = nil
		}
	}

	select {
	case <-m.served:
	case <-ctx.Done():
		return ctx.Err()
	}
	m.conns.Wait()
	return err
}

// ServeStream is called when a new connection is initiated. Requests received via the connection will be routed to the handler, and answered via the connection's replier.
func (m *module) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	if m.connectionMgr == nil {
		m.logger.Errorf("cannot serve connection, no connection manager set")
		return errors.New("cannot serve connection, no connection manager set")
	}

	// Start handling the connection.
	handler, err := m.connectionMgr.NewConnection(ctx, &conn)
	if err != nil {
		return err
	}
	m.logger.Infow("client connected", zap.Stringer("uuid", handler.UUID()))
	conn.Go(ctx, handler.HandleReq)

	// Block until the client disconnects or the server stops.
	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	}

	// Cleanup after connection.
	m.connectionMgr.RemoveConnection(context.Background(), handler.UUID())
	m.logger.Infow("client disconnected", zap.Stringer("uuid", handler.UUID()))

	return conn.Err()
}

// RegisterConnectionManager sets the connection manager, which keeps track of current active connections and provides a Router implementation.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	if m.connectionMgr != nil {
		return errors.New("cannot register a duplicate connection manager")
	}
	m.connectionMgr = connectionMgr
	return nil
}

func (m *module) URL() string {
	if m.ln == nil {
		return ""
	}
	if m.cfg.Transport == TransportWebSocket {
		return "ws://" + m.ln.Addr().String() + "/"
	}
	return "tcp://" + m.ln.Addr().String()
}

// setup should be called after creation of a new module to open the listener.
func (m *module) setup() error {
	if m.cfg.Address == "" {
		return errors.New("setup called before address is set")
	}

	ln, err := net.Listen("tcp", m.cfg.Address)
	if err != nil {
		return err
	}
	m.ln = ln

	if m.cfg.Transport == TransportWebSocket {
		m.server = &http.Server{Handler: http.HandlerFunc(m.serveHTTP)}
	}
	return nil
}

// start will serve connections until the listener is closed, and panic on any other error.
func (m *module) start() {
	defer close(m.served)

	m.logger.Infow("started JSON-RPC inbound", zap.String("address", m.URL()), zap.String("transport", m.cfg.Transport))

	var err error
	if m.server != nil {
		err = m.server.Serve(m.ln)
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
	} else {
		err = m.acceptTCP()
		if errors.Is(err, net.ErrClosed) {
			return
		}
	}
	if err != nil {
		panic(err)
	}
}

// acceptTCP serves each accepted connection on its own goroutine until the listener is closed.
// Connections are tracked so that OnStop can wait for them to be torn down.
func (m *module) acceptTCP() error {
	for {
		nc, err := m.ln.Accept()
		if err != nil {
			return err
		}

		m.conns.Add(1)
		go func() {
			defer m.conns.Done()
			conn := jsonrpc2.NewConn(jsonrpc2.NewStream(nc))
			if err := m.ServeStream(m.ctx, conn); err != nil && !errors.Is(err, net.ErrClosed) {
				m.logger.Debugw("tcp connection ended", zap.Error(err))
			}
		}()
	}
}

// serveHTTP upgrades a request to a WebSocket stream and serves it until it closes.
func (m *module) serveHTTP(w http.ResponseWriter, r *http.Request) {
	m.conns.Add(1)
	defer m.conns.Done()

	stream, err := m.upgrader.Upgrade(w, r)
	if err != nil {
		m.logger.Warnw("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := jsonrpc2.NewConn(stream)
	if err := m.ServeStream(m.ctx, conn); err != nil && !errors.Is(err, net.ErrClosed) {
		m.logger.Debugw("websocket connection ended", zap.Error(err))
	}
}

// processConfig will parse the configuration for any values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	val := cfg.Get(_configKeyJSONRPC)
	if err := val.Populate(&m.cfg); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyJSONRPC, err)
	}

	if m.cfg.Address == "" {
		// yaml is missing either the key or value
		return fmt.Errorf("missing field %q in config", _configKeyAddress)
	}

	switch m.cfg.Transport {
	case "":
		m.cfg.Transport = TransportTCP
	case TransportTCP, TransportWebSocket:
	default:
		return fmt.Errorf("unsupported transport %q, expected %q or %q", m.cfg.Transport, TransportTCP, TransportWebSocket)
	}

	return nil
}
