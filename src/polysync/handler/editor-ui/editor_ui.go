// Package editorui implements the inbound JSON-RPC handlers for UI clients.
package editorui

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/controller/projection"
	syntaxsync "github.com/uber/polysync/src/polysync/controller/syntax-sync"
	uiclient "github.com/uber/polysync/src/polysync/gateway/ui-client"
	"github.com/uber/polysync/src/polysync/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler accepts UI connections and routes their requests to the sync controller.
type Handler interface {
	jsonrpcfx.ConnectionManager
	// Connections returns the ids of the open UI connections.
	Connections() []uuid.UUID
}

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	Controller syntaxsync.Controller
	Projector  projection.Projector
	UI         uiclient.Gateway
	JSONRPC    jsonrpcfx.JSONRPCModule
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type handler struct {
	ctrl      syntaxsync.Controller
	projector projection.Projector
	ui        uiclient.Gateway
	logger    *zap.SugaredLogger
	stats     tally.Scope

	routers   map[uuid.UUID]*jsonRPCRouter
	routersMu sync.Mutex
}

// New constructs a new editor-ui Handler and registers it as the JSON-RPC connection manager.
func New(p Params) (Handler, error) {
	h := &handler{
		ctrl:      p.Controller,
		projector: p.Projector,
		ui:        p.UI,
		logger:    p.Logger.With("plugin", "editor-ui"),
		stats:     p.Stats.SubScope("json_rpc"),
		routers:   make(map[uuid.UUID]*jsonRPCRouter),
	}
	if err := p.JSONRPC.RegisterConnectionManager(h); err != nil {
		return nil, err
	}
	return h, nil
}

// NewConnection registers the connection as a UI client and redraws the session for it.
func (h *handler) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating connection id: %w", err)
	}

	if err := h.ui.RegisterClient(ctx, id, conn); err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	if err := h.ctrl.Refresh(ctx); err != nil {
		if deregisterErr := h.ui.DeregisterClient(ctx, id); deregisterErr != nil {
			h.logger.Warnw("deregistering client", "uuid", id, "error", deregisterErr)
		}
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := &jsonRPCRouter{
		ctrl:      h.ctrl,
		projector: h.projector,
		ui:        h.ui,
		uuid:      id,
		stats:     h.stats,
	}

	h.routersMu.Lock()
	h.routers[id] = r
	h.stats.Gauge("connections").Update(float64(len(h.routers)))
	h.routersMu.Unlock()

	return r, nil
}

// RemoveConnection cleans up a closed connection.
func (h *handler) RemoveConnection(ctx context.Context, id uuid.UUID) {
	h.routersMu.Lock()
	delete(h.routers, id)
	h.stats.Gauge("connections").Update(float64(len(h.routers)))
	h.routersMu.Unlock()

	if err := h.ui.DeregisterClient(ctx, id); err != nil {
		h.logger.Warnw("deregistering client", "uuid", id, "error", err)
	}
}

func (h *handler) Connections() []uuid.UUID {
	h.routersMu.Lock()
	defer h.routersMu.Unlock()

	ids := make([]uuid.UUID, 0, len(h.routers))
	for id := range h.routers {
		ids = append(ids, id)
	}
	return ids
}
