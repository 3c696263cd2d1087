package editorui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/idl/mock/jsonrpc2mock"
	"github.com/uber/polysync/src/polysync/controller/projection/projectionmock"
	"github.com/uber/polysync/src/polysync/controller/syntax-sync/syntaxsyncmock"
	"github.com/uber/polysync/src/polysync/gateway/ui-client/uiclientmock"
	"github.com/uber/polysync/src/polysync/internal/jsonrpcfx/jsonrpcfxmock"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testMocks struct {
	ctrl      *syntaxsyncmock.MockController
	projector *projectionmock.MockProjector
	ui        *uiclientmock.MockGateway
	jsonrpc   *jsonrpcfxmock.MockJSONRPCModule
	stats     tally.TestScope
}

func newTestMocks(t *testing.T) *testMocks {
	ctrl := gomock.NewController(t)
	return &testMocks{
		ctrl:      syntaxsyncmock.NewMockController(ctrl),
		projector: projectionmock.NewMockProjector(ctrl),
		ui:        uiclientmock.NewMockGateway(ctrl),
		jsonrpc:   jsonrpcfxmock.NewMockJSONRPCModule(ctrl),
		stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
	}
}

func (m *testMocks) params() Params {
	return Params{
		Controller: m.ctrl,
		Projector:  m.projector,
		UI:         m.ui,
		JSONRPC:    m.jsonrpc,
		Logger:     zap.NewNop().Sugar(),
		Stats:      m.stats,
	}
}

func TestNew(t *testing.T) {
	t.Run("registers as connection manager", func(t *testing.T) {
		m := newTestMocks(t)
		m.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)
		h, err := New(m.params())
		require.NoError(t, err)
		assert.Empty(t, h.Connections())
	})

	t.Run("duplicate connection manager", func(t *testing.T) {
		m := newTestMocks(t)
		m.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("duplicate"))
		_, err := New(m.params())
		assert.Error(t, err)
	})
}

func TestNewConnection(t *testing.T) {
	ctx := context.Background()
	mockConn := jsonrpc2mock.NewMockConn(gomock.NewController(t))
	var conn jsonrpc2.Conn = mockConn

	t.Run("create success", func(t *testing.T) {
		m := newTestMocks(t)
		m.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)
		h, err := New(m.params())
		require.NoError(t, err)

		m.ui.EXPECT().RegisterClient(gomock.Any(), gomock.Any(), &conn).Return(nil)
		m.ctrl.EXPECT().Refresh(gomock.Any()).Return(nil)
		router, err := h.NewConnection(ctx, &conn)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCRouter{}, router)
		assert.Len(t, h.Connections(), 1)
		assert.Equal(t, router.UUID(), h.Connections()[0])
	})

	t.Run("register failure", func(t *testing.T) {
		m := newTestMocks(t)
		m.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)
		h, err := New(m.params())
		require.NoError(t, err)

		m.ui.EXPECT().RegisterClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))
		_, err = h.NewConnection(ctx, &conn)
		assert.Error(t, err)
		assert.Empty(t, h.Connections())
	})

	t.Run("refresh failure deregisters the client", func(t *testing.T) {
		m := newTestMocks(t)
		m.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)
		h, err := New(m.params())
		require.NoError(t, err)

		m.ui.EXPECT().RegisterClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.ctrl.EXPECT().Refresh(gomock.Any()).Return(errors.New("controller stopped"))
		m.ui.EXPECT().DeregisterClient(gomock.Any(), gomock.Any()).Return(nil)
		_, err = h.NewConnection(ctx, &conn)
		assert.Error(t, err)
		assert.Empty(t, h.Connections())
	})
}

func TestRemoveConnection(t *testing.T) {
	ctx := context.Background()
	mockConn := jsonrpc2mock.NewMockConn(gomock.NewController(t))
	var conn jsonrpc2.Conn = mockConn

	m := newTestMocks(t)
	m.jsonrpc.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)
	h, err := New(m.params())
	require.NoError(t, err)

	m.ui.EXPECT().RegisterClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.ctrl.EXPECT().Refresh(gomock.Any()).Return(nil)
	router, err := h.NewConnection(ctx, &conn)
	require.NoError(t, err)

	m.ui.EXPECT().DeregisterClient(gomock.Any(), router.UUID()).Return(nil)
	h.RemoveConnection(ctx, router.UUID())
	assert.Empty(t, h.Connections())

	// Unknown connections are only logged.
	m.ui.EXPECT().DeregisterClient(gomock.Any(), router.UUID()).Return(errors.New("not found"))
	h.RemoveConnection(ctx, router.UUID())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMockReplier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		return err
	}
}
