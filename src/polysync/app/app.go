package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/gateway"
	"github.com/uber/polysync/src/polysync/handler"
	"github.com/uber/polysync/src/polysync/internal/core"
	"github.com/uber/polysync/src/polysync/internal/fs"
	"github.com/uber/polysync/src/polysync/internal/jsonrpcfx"
	"github.com/uber/polysync/src/polysync/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the polysync application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "polysync",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
