package editorui

import (
	"context"

	"github.com/uber/polysync/src/polysync/internal/errors"
	"github.com/uber/polysync/src/polysync/mapper"
	"go.lsp.dev/jsonrpc2"
)

// _codeStopped is the reply code for intents received while the editor shuts down.
const _codeStopped jsonrpc2.Code = -32000

func (r *jsonRPCRouter) DidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidChangeParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.ui.UpdateSurfaceText(ctx, r.uuid, params.Text)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) TabClick(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTabClickParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.projector.TabClicked(ctx, params.Syntax)
	return reply(ctx, nil, replyErr(err))
}

// Save records the surface text carried by the keystroke, if any, before forwarding it.
func (r *jsonRPCRouter) Save(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSaveParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	if params.Text != nil {
		if err := r.ui.UpdateSurfaceText(ctx, r.uuid, *params.Text); err != nil {
			return reply(ctx, nil, err)
		}
	}

	err = r.projector.SaveKeystroke(ctx)
	return reply(ctx, nil, replyErr(err))
}

func (r *jsonRPCRouter) State(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.ctrl.State(ctx)
	if err != nil {
		return reply(ctx, nil, replyErr(err))
	}
	return reply(ctx, result, nil)
}

// replyErr reports a stopped controller with a dedicated code, so clients can tell shutdown apart from a failed intent.
func replyErr(err error) error {
	if err != nil && errors.IsStopped(err) {
		return jsonrpc2.NewError(_codeStopped, err.Error())
	}
	return err
}
