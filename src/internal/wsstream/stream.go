// Package wsstream carries JSON-RPC messages over a WebSocket connection, one message per text frame.
package wsstream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.lsp.dev/jsonrpc2"
)

type stream struct {
	conn *websocket.Conn

	// gorilla/websocket supports one concurrent writer.
	writeMu sync.Mutex
}

// New returns a jsonrpc2.Stream reading and writing whole messages on conn.
func New(conn *websocket.Conn) jsonrpc2.Stream {
	return &stream{conn: conn}
}

// Read implements jsonrpc2.Stream.
func (s *stream) Read(ctx context.Context) (jsonrpc2.Message, int64, error) {
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}

	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return nil, 0, err
	}

	msg, err := jsonrpc2.DecodeMessage(data)
	if err != nil {
		return nil, int64(len(data)), fmt.Errorf("decoding message: %w", err)
	}
	return msg, int64(len(data)), nil
}

// Write implements jsonrpc2.Stream.
func (s *stream) Write(ctx context.Context, msg jsonrpc2.Message) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("marshaling message: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// Close implements jsonrpc2.Stream.
func (s *stream) Close() error {
	return s.conn.Close()
}
