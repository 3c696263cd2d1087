// Package uiclient is the outbound side of the UI connection: render notifications and the mirror of the editing surface.
package uiclient

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/internal/errors"
	"github.com/uber/polysync/src/polysync/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _errSendToClient = "sending notification to UI client %q: %w"

// Gateway is used to send outbound notifications to every connected UI client.
// It also keeps the last known text of the editing surface, as reported by the clients.
type Gateway interface {
	// RegisterClient registers a new client with the gateway. Should be called each time a new UI connection is initialized.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a client from the gateway. Should be called each time a UI connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error
	// ClientCount returns the number of connected clients.
	ClientCount() int

	SetActiveTab(ctx context.Context, id entity.SyntaxID) error
	// RenderActiveBuffer sends the full text along with a patch from the current surface text.
	RenderActiveBuffer(ctx context.Context, text string, mode string) error
	RenderEntityList(ctx context.Context, kind entity.EntityKind, entities []entity.Entity) error
	ShowNotice(ctx context.Context, notice entity.Notice) error

	// Text returns the last known text of the editing surface.
	Text(ctx context.Context) (string, error)
	// UpdateSurfaceText records the editing surface text reported by a client.
	UpdateSurfaceText(ctx context.Context, id uuid.UUID, text string) error
}

// Params are inbound parameters to initialize a new Gateway.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gateway struct {
	clients     map[uuid.UUID]protocol.Client
	connections map[uuid.UUID]jsonrpc2.Conn
	clientsMu   sync.Mutex

	surface      string
	surfaceKnown bool

	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New returns a Gateway for sending UI notifications.
func New(p Params) Gateway {
	return &gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      p.Logger.With("plugin", "ui-client"),
		stats:       p.Stats.SubScope("ui"),
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	if conn == nil || *conn == nil {
		return errors.New("cannot register a nil connection")
	}

	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	g.clients[id] = protocol.ClientDispatcher(*conn, g.logger.Desugar())
	g.connections[id] = *conn
	g.stats.Gauge("connected_clients").Update(float64(len(g.connections)))
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	if _, ok := g.connections[id]; !ok {
		return &errors.ClientNotFoundError{UUID: id}
	}
	delete(g.clients, id)
	delete(g.connections, id)
	g.stats.Gauge("connected_clients").Update(float64(len(g.connections)))

	// Nothing displays the surface anymore.
	if len(g.connections) == 0 {
		g.surface, g.surfaceKnown = "", false
	}
	return nil
}

func (g *gateway) ClientCount() int {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()
	return len(g.connections)
}

func (g *gateway) SetActiveTab(ctx context.Context, id entity.SyntaxID) error {
	return g.broadcast(ctx, entity.MethodSetActiveTab, &entity.SetActiveTabParams{Syntax: id})
}

func (g *gateway) RenderActiveBuffer(ctx context.Context, text string, mode string) error {
	g.clientsMu.Lock()
	params := &entity.RenderBufferParams{
		Text: text,
		Mode: mode,
	}
	if g.surfaceKnown {
		params.Patch = mapper.TextsToPatch(g.surface, text)
	}
	if len(g.connections) > 0 {
		g.surface, g.surfaceKnown = text, true
	}
	g.clientsMu.Unlock()

	return g.broadcast(ctx, entity.MethodRenderBuffer, params)
}

func (g *gateway) RenderEntityList(ctx context.Context, kind entity.EntityKind, entities []entity.Entity) error {
	if entities == nil {
		entities = []entity.Entity{}
	}
	return g.broadcast(ctx, entity.MethodRenderEntities, &entity.RenderEntitiesParams{Kind: kind, Entities: entities})
}

func (g *gateway) ShowNotice(ctx context.Context, notice entity.Notice) error {
	params := mapper.NoticeToShowMessageParams(notice)

	var errs error
	clients := g.getClients()
	if len(clients) == 0 {
		g.logger.Warnw("no UI client connected to show notice", "message", notice.Message)
		return nil
	}
	for _, c := range clients {
		if err := c.client.ShowMessage(ctx, params); err != nil {
			errs = multierr.Append(errs, fmt.Errorf(_errSendToClient, c.id, err))
		}
	}
	return errs
}

func (g *gateway) Text(ctx context.Context) (string, error) {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	if !g.surfaceKnown {
		return "", &errors.NoClientConnectedError{}
	}
	return g.surface, nil
}

func (g *gateway) UpdateSurfaceText(ctx context.Context, id uuid.UUID, text string) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	if _, ok := g.connections[id]; !ok {
		return &errors.ClientNotFoundError{UUID: id}
	}
	g.surface, g.surfaceKnown = text, true
	return nil
}

type registeredClient struct {
	id     uuid.UUID
	conn   jsonrpc2.Conn
	client protocol.Client
}

// getClients returns the connected clients ordered by id.
func (g *gateway) getClients() []registeredClient {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	result := make([]registeredClient, 0, len(g.connections))
	for id, conn := range g.connections {
		result = append(result, registeredClient{id: id, conn: conn, client: g.clients[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].id.String() < result[j].id.String()
	})
	return result
}

// broadcast sends a notification to every connected client. Rendering without clients is a no-op.
func (g *gateway) broadcast(ctx context.Context, method string, params interface{}) error {
	var errs error
	for _, c := range g.getClients() {
		if err := c.conn.Notify(ctx, method, params); err != nil {
			errs = multierr.Append(errs, fmt.Errorf(_errSendToClient, c.id, err))
		}
	}
	return errs
}
