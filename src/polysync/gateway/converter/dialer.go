package converter

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/uber/polysync/src/internal/wsstream"
	"go.lsp.dev/jsonrpc2"
)

// Dialer opens a JSON-RPC stream to a conversion service endpoint.
type Dialer interface {
	Dial(ctx context.Context, address string) (jsonrpc2.Stream, error)
}

type streamDialer struct {
	handshakeTimeout time.Duration
}

// NewDialer returns a Dialer supporting ws://, wss:// and tcp:// endpoint addresses.
func NewDialer(handshakeTimeout time.Duration) Dialer {
	return &streamDialer{handshakeTimeout: handshakeTimeout}
}

// Dial connects using the transport selected by the address scheme.
// WebSocket endpoints exchange one message per frame; tcp endpoints use Content-Length framing.
func (d *streamDialer) Dial(ctx context.Context, address string) (jsonrpc2.Stream, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint address %q: %w", address, err)
	}

	switch u.Scheme {
	case "ws", "wss":
		return wsstream.Dial(ctx, address, d.handshakeTimeout)
	case "tcp":
		dialer := net.Dialer{Timeout: d.handshakeTimeout}
		conn, err := dialer.DialContext(ctx, "tcp", u.Host)
		if err != nil {
			return nil, err
		}
		return jsonrpc2.NewStream(conn), nil
	default:
		return nil, fmt.Errorf("unsupported scheme %q in endpoint address %q", u.Scheme, address)
	}
}
