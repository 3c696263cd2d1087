package editorui

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/controller/projection"
	syntaxsync "github.com/uber/polysync/src/polysync/controller/syntax-sync"
	"github.com/uber/polysync/src/polysync/entity"
	uiclient "github.com/uber/polysync/src/polysync/gateway/ui-client"
	"go.lsp.dev/jsonrpc2"
)

type jsonRPCRouter struct {
	ctrl      syntaxsync.Controller
	projector projection.Projector
	ui        uiclient.Gateway
	uuid      uuid.UUID
	stats     tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if r.stats != nil {
		r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)
	}

	switch req.Method() {
	case entity.MethodDidChange:
		return r.DidChange(ctx, reply, req)

	case entity.MethodTabClick:
		return r.TabClick(ctx, reply, req)

	case entity.MethodSave:
		return r.Save(ctx, reply, req)

	case entity.MethodState:
		return r.State(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
