package uiclient

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/idl/mock/jsonrpc2mock"
	"github.com/uber/polysync/src/polysync/entity"
	polyerrors "github.com/uber/polysync/src/polysync/internal/errors"
	"github.com/uber/polysync/src/polysync/factory"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestGateway() *gateway {
	return New(Params{
		Logger: zap.NewNop().Sugar(),
		Stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
	}).(*gateway)
}

func getTestGateway(t *testing.T) (*gateway, *jsonrpc2mock.MockConn, uuid.UUID) {
	ctrl := gomock.NewController(t)
	g := newTestGateway()
	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn
	id := factory.UUID()
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))
	return g, mockConn, id
}

func TestRegisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	g := newTestGateway()

	for i := 0; i < 10; i++ {
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		assert.NoError(t, g.RegisterClient(ctx, factory.UUID(), &conn))
	}
	assert.Len(t, g.clients, 10)
	assert.Len(t, g.connections, 10)
	assert.Equal(t, 10, g.ClientCount())

	assert.Error(t, g.RegisterClient(ctx, factory.UUID(), nil))
}

func TestDeregisterClient(t *testing.T) {
	ctx := context.Background()
	g, _, id := getTestGateway(t)
	require.NoError(t, g.UpdateSurfaceText(ctx, id, "typed"))

	require.NoError(t, g.DeregisterClient(ctx, id))
	assert.Len(t, g.clients, 0)
	assert.Len(t, g.connections, 0)

	// The surface is forgotten with the last client.
	_, err := g.Text(ctx)
	var noClient *polyerrors.NoClientConnectedError
	assert.ErrorAs(t, err, &noClient)

	err = g.DeregisterClient(ctx, id)
	notFound, ok := polyerrors.NotFoundClient(err)
	require.True(t, ok)
	assert.Equal(t, id, notFound)
}

func TestSetActiveTab(t *testing.T) {
	ctx := context.Background()
	g, mockConn, _ := getTestGateway(t)

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(ctx, entity.MethodSetActiveTab, &entity.SetActiveTabParams{Syntax: entity.SyntaxTypeScript}).Return(nil)
		assert.NoError(t, g.SetActiveTab(ctx, entity.SyntaxTypeScript))
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(ctx, entity.MethodSetActiveTab, gomock.Any()).Return(errors.New("error"))
		assert.Error(t, g.SetActiveTab(ctx, entity.SyntaxTypeScript))
	})
	t.Run("no clients", func(t *testing.T) {
		assert.NoError(t, newTestGateway().SetActiveTab(ctx, entity.SyntaxTypeScript))
	})
}

func TestRenderActiveBuffer(t *testing.T) {
	ctx := context.Background()

	t.Run("first render carries no patch", func(t *testing.T) {
		g, mockConn, _ := getTestGateway(t)
		mockConn.EXPECT().Notify(ctx, entity.MethodRenderBuffer, &entity.RenderBufferParams{Text: "openapi_seed", Mode: "yaml"}).Return(nil)
		require.NoError(t, g.RenderActiveBuffer(ctx, "openapi_seed", "yaml"))

		text, err := g.Text(ctx)
		require.NoError(t, err)
		assert.Equal(t, "openapi_seed", text)
	})

	t.Run("patch from the surface text", func(t *testing.T) {
		g, mockConn, id := getTestGateway(t)
		require.NoError(t, g.UpdateSurfaceText(ctx, id, "a: 1\n"))

		mockConn.EXPECT().Notify(ctx, entity.MethodRenderBuffer, gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params interface{}) error {
				p := params.(*entity.RenderBufferParams)
				assert.Equal(t, "a: 2\n", p.Text)
				assert.NotEmpty(t, p.Patch)
				return nil
			})
		require.NoError(t, g.RenderActiveBuffer(ctx, "a: 2\n", "yaml"))
	})

	t.Run("no clients", func(t *testing.T) {
		g := newTestGateway()
		require.NoError(t, g.RenderActiveBuffer(ctx, "x", "yaml"))
		_, err := g.Text(ctx)
		assert.Error(t, err)
	})
}

func TestRenderEntityList(t *testing.T) {
	ctx := context.Background()
	g, mockConn, _ := getTestGateway(t)

	models := factory.ProjectWithModels("Pet").Models
	mockConn.EXPECT().Notify(ctx, entity.MethodRenderEntities, &entity.RenderEntitiesParams{Kind: entity.EntityKindModel, Entities: models}).Return(nil)
	assert.NoError(t, g.RenderEntityList(ctx, entity.EntityKindModel, models))

	mockConn.EXPECT().Notify(ctx, entity.MethodRenderEntities, &entity.RenderEntitiesParams{Kind: entity.EntityKindRequest, Entities: []entity.Entity{}}).Return(nil)
	assert.NoError(t, g.RenderEntityList(ctx, entity.EntityKindRequest, nil))
}

func TestShowNotice(t *testing.T) {
	ctx := context.Background()
	g, mockConn, _ := getTestGateway(t)
	notice := entity.Notice{Type: entity.NoticeError, Message: "Parsing OpenAPI failed"}

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(ctx, protocol.MethodWindowShowMessage, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: "Parsing OpenAPI failed",
		}).Return(nil)
		assert.NoError(t, g.ShowNotice(ctx, notice))
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(ctx, protocol.MethodWindowShowMessage, gomock.Any()).Return(errors.New("error"))
		assert.Error(t, g.ShowNotice(ctx, notice))
	})
	t.Run("no clients", func(t *testing.T) {
		assert.NoError(t, newTestGateway().ShowNotice(ctx, notice))
	})
}

func TestBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	g := newTestGateway()

	failing := factory.UUID()
	for i := 0; i < 3; i++ {
		id := factory.UUID()
		if i == 0 {
			id = failing
		}
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		require.NoError(t, g.RegisterClient(ctx, id, &conn))
		if id == failing {
			mockConn.EXPECT().Notify(ctx, entity.MethodSetActiveTab, gomock.Any()).Return(errors.New("closed"))
		} else {
			mockConn.EXPECT().Notify(ctx, entity.MethodSetActiveTab, gomock.Any()).Return(nil)
		}
	}

	err := g.SetActiveTab(ctx, entity.SyntaxOpenAPI)
	assert.ErrorContains(t, err, failing.String())
}

func TestUpdateSurfaceText(t *testing.T) {
	ctx := context.Background()
	g, _, id := getTestGateway(t)

	_, err := g.Text(ctx)
	assert.Error(t, err)

	require.NoError(t, g.UpdateSurfaceText(ctx, id, "typed"))
	text, err := g.Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "typed", text)

	_, ok := polyerrors.NotFoundClient(g.UpdateSurfaceText(ctx, factory.UUID(), "other"))
	assert.True(t, ok)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
