package controller

import (
	"github.com/uber/polysync/src/polysync/controller/projection"
	syntaxsync "github.com/uber/polysync/src/polysync/controller/syntax-sync"
	"go.uber.org/fx"
)

// Module provides the synchronization controller and the UI projection layer.
var Module = fx.Options(
	fx.Provide(projection.New),
	fx.Provide(syntaxsync.New),
)
