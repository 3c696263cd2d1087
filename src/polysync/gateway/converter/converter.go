// Package converter is the outbound client for the per-syntax conversion services.
package converter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/entity"
	polyerrors "github.com/uber/polysync/src/polysync/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Operations exposed by every conversion service.
const (
	MethodTemplate = "template"
	MethodParse    = "parse"
	MethodUpdate   = "update"
)

const (
	_configKeyConverter = "converter"

	_defaultTimeout          = 10 * time.Second
	_defaultHandshakeTimeout = 5 * time.Second
)

// Gateway issues requests to conversion services. Connections are established lazily and reused per address.
type Gateway interface {
	// Invoke sends one request and decodes the matching response into result.
	// Failures are either a *errors.TransportError or a *errors.RemoteError; there are no implicit retries.
	Invoke(ctx context.Context, address string, method string, params interface{}, result interface{}) error

	// Template returns the seed text of the named template.
	Template(ctx context.Context, address string, name string) (string, error)
	// Parse converts syntax-specific text into the canonical project.
	Parse(ctx context.Context, address string, code string) (entity.Project, error)
	// Update regenerates syntax-specific text from the project, using code as a hint. Empty code requests fresh generation.
	Update(ctx context.Context, address string, project entity.Project, code string) (string, error)

	// Close closes every pooled connection.
	Close() error
}

// Config is read from the "converter" config key.
type Config struct {
	Timeout          time.Duration `yaml:"timeout"`
	HandshakeTimeout time.Duration `yaml:"handshakeTimeout"`
}

// TemplateParams are the parameters of the template operation.
type TemplateParams struct {
	Name string `json:"name"`
}

// ParseParams are the parameters of the parse operation.
type ParseParams struct {
	Code string `json:"code"`
}

// UpdateParams are the parameters of the update operation.
type UpdateParams struct {
	Project entity.Project `json:"project"`
	Code    string         `json:"code"`
}

// CodeResult is returned by the template and update operations.
type CodeResult struct {
	Code string `json:"code"`
}

// Params are inbound parameters to initialize a new Gateway.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Dialer    Dialer    `optional:"true"`
	Output    io.Writer `name:"converterOutput" optional:"true"`
}

type connEntry struct {
	mu   sync.Mutex
	conn jsonrpc2.Conn
}

type gateway struct {
	dialer  Dialer
	timeout time.Duration
	logger  *zap.SugaredLogger
	stats   tally.Scope
	// output receives a human readable transcript of every call.
	output io.Writer

	conns   map[string]*connEntry
	connsMu sync.Mutex

	// ctx scopes the read loops of pooled connections.
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new conversion service Gateway.
func New(p Params) (Gateway, error) {
	cfg := Config{
		Timeout:          _defaultTimeout,
		HandshakeTimeout: _defaultHandshakeTimeout,
	}
	if err := p.Config.Get(_configKeyConverter).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyConverter, err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid converter timeout %v", cfg.Timeout)
	}

	dialer := p.Dialer
	if dialer == nil {
		dialer = NewDialer(cfg.HandshakeTimeout)
	}

	g := newGateway(dialer, cfg.Timeout, p.Logger, p.Stats)
	g.output = p.Output
	if p.Lifecycle != nil {
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return g.Close()
			},
		})
	}
	return g, nil
}

func newGateway(dialer Dialer, timeout time.Duration, logger *zap.SugaredLogger, stats tally.Scope) *gateway {
	ctx, cancel := context.WithCancel(context.Background())
	return &gateway{
		dialer:  dialer,
		timeout: timeout,
		logger:  logger.With("plugin", "converter"),
		stats:   stats.SubScope("converter"),
		conns:   make(map[string]*connEntry),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (g *gateway) Invoke(ctx context.Context, address string, method string, params interface{}, result interface{}) (err error) {
	start := time.Now()
	scope := g.stats.Tagged(map[string]string{"method": method})
	scope.Counter("calls").Inc(1)
	g.logger.Debugw("calling conversion service", "address", address, "method", method)
	g.transcribe("--> %s %s %s", method, address, encodeParams(params))

	var raw json.RawMessage
	defer func() {
		elapsed := time.Since(start)
		scope.Timer("latency").Record(elapsed)
		if err != nil {
			scope.Counter("errors").Inc(1)
			g.logger.Warnw("conversion call failed", "address", address, "method", method, "duration", elapsed, "error", err)
			g.transcribe("<-- %s %s (%v) error: %v", method, address, elapsed, err)
			return
		}
		g.logger.Infow("conversion call succeeded", "address", address, "method", method, "duration", elapsed)
		g.transcribe("<-- %s %s (%v) %s", method, address, elapsed, raw)
	}()

	conn, err := g.getConn(ctx, address)
	if err != nil {
		return &polyerrors.TransportError{Address: address, Method: method, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// A dropped connection would otherwise leave the call waiting for the full timeout.
	go func() {
		select {
		case <-conn.Done():
			cancel()
		case <-callCtx.Done():
		}
	}()

	_, err = conn.Call(callCtx, method, params, &raw)
	if err == nil {
		if result == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, result); err != nil {
			return &polyerrors.RemoteError{
				Address: address,
				Method:  method,
				Message: fmt.Sprintf("malformed response: %v", err),
			}
		}
		return nil
	}

	var rpcErr *jsonrpc2.Error
	if errors.As(err, &rpcErr) {
		return &polyerrors.RemoteError{
			Address: address,
			Method:  method,
			Code:    int64(rpcErr.Code),
			Message: rpcErr.Message,
		}
	}

	// A call that merely timed out leaves the connection usable for other calls in flight.
	timeout := errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil
	if ctx.Err() == nil && !timeout {
		g.evict(address, conn)
	}
	return &polyerrors.TransportError{
		Address: address,
		Method:  method,
		Timeout: timeout,
		Err:     err,
	}
}

func (g *gateway) Template(ctx context.Context, address string, name string) (string, error) {
	var result CodeResult
	if err := g.Invoke(ctx, address, MethodTemplate, &TemplateParams{Name: name}, &result); err != nil {
		return "", err
	}
	return result.Code, nil
}

func (g *gateway) Parse(ctx context.Context, address string, code string) (entity.Project, error) {
	var raw json.RawMessage
	if err := g.Invoke(ctx, address, MethodParse, &ParseParams{Code: code}, &raw); err != nil {
		return entity.Project{}, err
	}

	// A partial project must never replace the canonical one.
	for _, key := range []entity.EntityKind{entity.EntityKindModel, entity.EntityKindRequest} {
		if !gjson.GetBytes(raw, string(key)).IsArray() {
			return entity.Project{}, &polyerrors.RemoteError{
				Address: address,
				Method:  MethodParse,
				Message: fmt.Sprintf("incomplete project: %q is missing or not a list", key),
			}
		}
	}

	var project entity.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return entity.Project{}, &polyerrors.RemoteError{
			Address: address,
			Method:  MethodParse,
			Message: fmt.Sprintf("malformed project: %v", err),
		}
	}
	return project.Clone(), nil
}

func (g *gateway) Update(ctx context.Context, address string, project entity.Project, code string) (string, error) {
	var result CodeResult
	params := &UpdateParams{
		Project: project.Clone(),
		Code:    code,
	}
	if err := g.Invoke(ctx, address, MethodUpdate, params, &result); err != nil {
		return "", err
	}
	return result.Code, nil
}

func (g *gateway) Close() error {
	g.cancel()

	g.connsMu.Lock()
	entries := make([]*connEntry, 0, len(g.conns))
	for _, entry := range g.conns {
		entries = append(entries, entry)
	}
	g.conns = make(map[string]*connEntry)
	g.connsMu.Unlock()

	var errs error
	for _, entry := range entries {
		entry.mu.Lock()
		if entry.conn != nil {
			errs = multierr.Append(errs, entry.conn.Close())
			<-entry.conn.Done()
			entry.conn = nil
		}
		entry.mu.Unlock()
	}
	return errs
}

func (g *gateway) transcribe(format string, args ...interface{}) {
	if g.output == nil {
		return
	}
	fmt.Fprintf(g.output, format+"\n", args...)
}

func encodeParams(params interface{}) string {
	b, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%+v", params)
	}
	return string(b)
}

// getConn returns the pooled connection for address, dialing when none is open.
func (g *gateway) getConn(ctx context.Context, address string) (jsonrpc2.Conn, error) {
	if err := g.ctx.Err(); err != nil {
		return nil, fmt.Errorf("gateway closed: %w", err)
	}

	g.connsMu.Lock()
	entry, ok := g.conns[address]
	if !ok {
		entry = &connEntry{}
		g.conns[address] = entry
	}
	g.connsMu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.conn != nil {
		select {
		case <-entry.conn.Done():
			g.logger.Infow("conversion service connection closed", "address", address, "error", entry.conn.Err())
			entry.conn = nil
		default:
			return entry.conn, nil
		}
	}

	stream, err := g.dialer.Dial(ctx, address)
	if err != nil {
		return nil, err
	}

	conn := jsonrpc2.NewConn(stream)
	conn.Go(g.ctx, jsonrpc2.MethodNotFoundHandler)
	entry.conn = conn
	g.stats.Counter("connects").Inc(1)
	g.logger.Infow("connected to conversion service", "address", address)
	return conn, nil
}

// evict closes conn if it is still the pooled connection for address, so the next call re-dials.
func (g *gateway) evict(address string, conn jsonrpc2.Conn) {
	g.connsMu.Lock()
	entry, ok := g.conns[address]
	g.connsMu.Unlock()
	if !ok {
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.conn == conn {
		if err := conn.Close(); err != nil {
			g.logger.Debugw("closing evicted connection", "address", address, "error", err)
		}
		entry.conn = nil
	}
}
