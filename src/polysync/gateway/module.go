package gateway

import (
	"io"

	"github.com/uber/polysync/src/polysync/controller/projection"
	"github.com/uber/polysync/src/polysync/gateway/converter"
	uiclient "github.com/uber/polysync/src/polysync/gateway/ui-client"
	"github.com/uber/polysync/src/polysync/internal/logfilewriter"
	"go.uber.org/fx"
)

const _converterOutputName = "polysync-converter"

// Module provides the outbound gateways: conversion services and UI clients.
var Module = fx.Options(
	fx.Provide(fx.Annotate(newConverterOutput, fx.ResultTags(`name:"converterOutput"`))),
	fx.Provide(converter.New),
	fx.Provide(uiclient.New),
	fx.Provide(func(g uiclient.Gateway) projection.Renderer { return g }),
	fx.Provide(func(g uiclient.Gateway) projection.Surface { return g }),
)

// newConverterOutput sets up the transcript file of conversion service calls.
func newConverterOutput(p logfilewriter.Params) (io.Writer, error) {
	return logfilewriter.SetupOutputWriter(p, _converterOutputName)
}
