// Package service implements a conversion service for local development: a syntax that renders the project as a YAML or JSON document.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/gateway/converter"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Service answers the template, parse and update operations of the conversion contract.
type Service struct {
	codec  Codec
	logger *zap.SugaredLogger
}

// New returns a Service rendering documents with codec.
func New(codec Codec, logger *zap.SugaredLogger) *Service {
	return &Service{
		codec:  codec,
		logger: logger,
	}
}

// Handle routes a single request.
func (s *Service) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Debugw("request received", "method", req.Method())

	switch req.Method() {
	case converter.MethodTemplate:
		var params converter.TemplateParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
		code, err := s.Template(params.Name)
		if err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
		return reply(ctx, converter.CodeResult{Code: code}, nil)

	case converter.MethodParse:
		var params converter.ParseParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
		project, err := s.Parse(params.Code)
		if err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
		return reply(ctx, project, nil)

	case converter.MethodUpdate:
		var params converter.UpdateParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, invalidParams(err))
		}
		code, err := s.Update(params.Project, params.Code)
		if err != nil {
			return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InternalError, err.Error()))
		}
		return reply(ctx, converter.CodeResult{Code: code}, nil)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

// Template renders the named template.
func (s *Service) Template(name string) (string, error) {
	project, err := Template(name)
	if err != nil {
		return "", err
	}
	return s.codec.Encode(project)
}

// Parse decodes code into the project.
func (s *Service) Parse(code string) (entity.Project, error) {
	project, err := s.codec.Decode(code)
	if err != nil {
		return entity.Project{}, fmt.Errorf("parsing document: %w", err)
	}
	return project, nil
}

// Update renders project. The previous code is kept verbatim when it already describes the same project.
func (s *Service) Update(project entity.Project, code string) (string, error) {
	if code != "" {
		if previous, err := s.codec.Decode(code); err == nil && sameProject(previous, project) {
			return code, nil
		}
	}
	return s.codec.Encode(project)
}

func sameProject(a, b entity.Project) bool {
	ja, errA := json.Marshal(a.Clone())
	jb, errB := json.Marshal(b.Clone())
	return errA == nil && errB == nil && string(ja) == string(jb)
}

func invalidParams(err error) error {
	return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
}
