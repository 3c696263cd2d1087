package handler

import (
	controller "github.com/uber/polysync/src/polysync/controller"
	syntaxsync "github.com/uber/polysync/src/polysync/controller/syntax-sync"
	handler "github.com/uber/polysync/src/polysync/handler/editor-ui"
	"github.com/uber/polysync/src/polysync/repository/buffers"
	"github.com/uber/polysync/src/polysync/repository/project"
	"go.uber.org/fx"
)

// Module provides the editor server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(buffers.New),
	fx.Provide(project.New),
	fx.Provide(handler.New),
	fx.Invoke(outputConverterEndpoints),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Invoke(func(c syntaxsync.Controller) {}),
)
