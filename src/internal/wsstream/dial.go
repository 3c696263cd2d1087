package wsstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.lsp.dev/jsonrpc2"
)

// Dial opens a WebSocket connection to url and wraps it as a jsonrpc2.Stream.
func Dial(ctx context.Context, url string, handshakeTimeout time.Duration) (jsonrpc2.Stream, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dialing %s: %w (status %s)", url, err, resp.Status)
		}
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	return New(conn), nil
}

// Upgrader upgrades inbound HTTP requests to JSON-RPC streams.
type Upgrader struct {
	upgrader websocket.Upgrader
}

// NewUpgrader returns an Upgrader. Any origin is accepted since the listener is expected to be bound to a local address.
func NewUpgrader() *Upgrader {
	return &Upgrader{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Upgrade completes the WebSocket handshake and wraps the connection as a jsonrpc2.Stream.
func (u *Upgrader) Upgrade(w http.ResponseWriter, r *http.Request) (jsonrpc2.Stream, error) {
	conn, err := u.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}
