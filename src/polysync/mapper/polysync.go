package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/internal/errors"
	"github.com/uber/polysync/src/polysync/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// SyntaxDescriptorToModel maps a SyntaxDescriptor entity to its model equivalent.
func SyntaxDescriptorToModel(d entity.SyntaxDescriptor) *model.SyntaxBuffer {
	return &model.SyntaxBuffer{
		Syntax:      int(d.ID),
		Address:     d.Address,
		Mode:        d.Mode,
		DisplayName: d.DisplayName,
		Text:        d.Text,
	}
}

// ModelToSyntaxDescriptor maps a model SyntaxBuffer to its entity equivalent.
func ModelToSyntaxDescriptor(m *model.SyntaxBuffer) (entity.SyntaxDescriptor, error) {
	id := entity.SyntaxID(m.Syntax)
	if !id.Valid() {
		return entity.SyntaxDescriptor{}, &errors.UnknownSyntaxError{Name: fmt.Sprint(m.Syntax)}
	}
	return entity.SyntaxDescriptor{
		ID:          id,
		Address:     m.Address,
		Mode:        m.Mode,
		DisplayName: m.DisplayName,
		Text:        m.Text,
	}, nil
}

// ProjectToModel maps a Project entity to its model equivalent. The model shares no memory with p.
func ProjectToModel(p entity.Project) *model.Project {
	c := p.Clone()
	return &model.Project{
		Models:   c.Models,
		Requests: c.Requests,
	}
}

// ModelToProject maps a model Project to its entity equivalent. The entity shares no memory with m.
func ModelToProject(m *model.Project) entity.Project {
	return entity.Project{
		Models:   m.Models,
		Requests: m.Requests,
	}.Clone()
}

// NoticeToShowMessageParams maps a Notice into protocol.ShowMessageParams.
func NoticeToShowMessageParams(n entity.Notice) *protocol.ShowMessageParams {
	t := protocol.MessageTypeInfo
	switch n.Type {
	case entity.NoticeError:
		t = protocol.MessageTypeError
	case entity.NoticeWarning:
		t = protocol.MessageTypeWarning
	}
	return &protocol.ShowMessageParams{
		Type:    t,
		Message: n.Message,
	}
}

// TextsToPatch returns the diff-match-patch patch text that turns prev into next.
func TextsToPatch(prev, next string) string {
	if prev == next {
		return ""
	}
	dmp := diffmatchpatch.New()
	return dmp.PatchToText(dmp.PatchMake(prev, next))
}

// RequestToDidChangeParams maps the parameters from a jsonrpc2.Request into entity.DidChangeParams.
func RequestToDidChangeParams(req jsonrpc2.Request) (*entity.DidChangeParams, error) {
	params := entity.DidChangeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToTabClickParams maps the parameters from a jsonrpc2.Request into entity.TabClickParams.
func RequestToTabClickParams(req jsonrpc2.Request) (*entity.TabClickParams, error) {
	params := entity.TabClickParams{Syntax: entity.SyntaxNone}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if !params.Syntax.Valid() {
		return nil, fmt.Errorf("%s: missing syntax", jsonrpc2.ErrInvalidParams)
	}
	return &params, nil
}

// RequestToSaveParams maps the parameters from a jsonrpc2.Request into entity.SaveParams. Params are optional.
func RequestToSaveParams(req jsonrpc2.Request) (*entity.SaveParams, error) {
	params := entity.SaveParams{}
	if len(req.Params()) == 0 {
		return &params, nil
	}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
