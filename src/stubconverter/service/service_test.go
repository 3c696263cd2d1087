package service

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/gateway/converter"
	"github.com/uber/polysync/src/internal/wsstream"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	codec, err := NewCodec(FormatYAML)
	require.NoError(t, err)
	return New(codec, zap.NewNop().Sugar())
}

// pipeClient serves s over an in-memory connection and returns the client side.
func pipeClient(t *testing.T, s *Service) jsonrpc2.Conn {
	client, server := net.Pipe()
	ctx := context.Background()

	sc := jsonrpc2.NewConn(jsonrpc2.NewStream(server))
	sc.Go(ctx, s.Handle)
	cc := jsonrpc2.NewConn(jsonrpc2.NewStream(client))
	cc.Go(ctx, jsonrpc2.MethodNotFoundHandler)

	t.Cleanup(func() {
		cc.Close()
		<-cc.Done()
		sc.Close()
		<-sc.Done()
	})
	return cc
}

func TestHandle(t *testing.T) {
	ctx := context.Background()
	conn := pipeClient(t, newTestService(t))

	var seed converter.CodeResult
	_, err := conn.Call(ctx, converter.MethodTemplate, converter.TemplateParams{Name: "petstore"}, &seed)
	require.NoError(t, err)
	assert.Contains(t, seed.Code, "name: Pet")

	var project entity.Project
	_, err = conn.Call(ctx, converter.MethodParse, converter.ParseParams{Code: seed.Code}, &project)
	require.NoError(t, err)
	assert.Equal(t, petstore(), project)

	var updated converter.CodeResult
	_, err = conn.Call(ctx, converter.MethodUpdate, converter.UpdateParams{Project: project, Code: ""}, &updated)
	require.NoError(t, err)
	assert.Equal(t, seed.Code, updated.Code)

	t.Run("unknown template", func(t *testing.T) {
		_, err := conn.Call(ctx, converter.MethodTemplate, converter.TemplateParams{Name: "bookstore"}, &seed)
		var rpcErr *jsonrpc2.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, jsonrpc2.InvalidParams, rpcErr.Code)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := conn.Call(ctx, converter.MethodParse, converter.ParseParams{Code: "models: [\n"}, &project)
		var rpcErr *jsonrpc2.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.Contains(t, rpcErr.Message, "parsing document")
	})

	t.Run("malformed params", func(t *testing.T) {
		_, err := conn.Call(ctx, converter.MethodParse, []int{1}, &project)
		assert.Error(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := conn.Call(ctx, "format", nil, nil)
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	s := newTestService(t)
	project := petstore()

	t.Run("previous code kept when it describes the project", func(t *testing.T) {
		handWritten := "requests: []\nmodels: []\n"
		code, err := s.Update(entity.EmptyProject(), handWritten)
		require.NoError(t, err)
		assert.Equal(t, handWritten, code)
	})

	t.Run("regenerated when the project changed", func(t *testing.T) {
		code, err := s.Update(project, "requests: []\nmodels: []\n")
		require.NoError(t, err)
		assert.Contains(t, code, "listPets")
	})

	t.Run("regenerated when previous code is invalid", func(t *testing.T) {
		code, err := s.Update(project, "models: [")
		require.NoError(t, err)
		parsed, err := s.Parse(code)
		require.NoError(t, err)
		assert.Equal(t, project, parsed)
	})
}

func TestServer(t *testing.T) {
	_, err := NewServer(nil, "pigeon", zap.NewNop().Sugar())
	assert.Error(t, err)

	tests := []struct {
		transport string
		dial      func(ctx context.Context, addr string) (jsonrpc2.Stream, error)
	}{
		{
			transport: TransportTCP,
			dial: func(ctx context.Context, addr string) (jsonrpc2.Stream, error) {
				var d net.Dialer
				c, err := d.DialContext(ctx, "tcp", addr)
				if err != nil {
					return nil, err
				}
				return jsonrpc2.NewStream(c), nil
			},
		},
		{
			transport: TransportWebSocket,
			dial: func(ctx context.Context, addr string) (jsonrpc2.Stream, error) {
				return wsstream.Dial(ctx, "ws://"+addr+"/", time.Second)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.transport, func(t *testing.T) {
			ignore := goleak.IgnoreCurrent()
			ctx := context.Background()
			server, err := NewServer(newTestService(t).Handle, tt.transport, zap.NewNop().Sugar())
			require.NoError(t, err)

			ln, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)
			server.Start(ln)

			stream, err := tt.dial(ctx, ln.Addr().String())
			require.NoError(t, err)
			client := jsonrpc2.NewConn(stream)
			client.Go(ctx, jsonrpc2.MethodNotFoundHandler)

			var result json.RawMessage
			_, err = client.Call(ctx, converter.MethodTemplate, converter.TemplateParams{Name: "empty"}, &result)
			require.NoError(t, err)
			assert.JSONEq(t, `{"code":"models: []\nrequests: []\n"}`, string(result))

			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			require.NoError(t, server.Stop(stopCtx))
			<-client.Done()

			// Stopping tears down every served connection.
			goleak.VerifyNone(t, ignore)
		})
	}
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
