package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/uber/polysync/src/stubconverter/service"
	"go.uber.org/zap"
)

const _version = "0.1.0"

const _usage = `Stub conversion service for the polysync editor.

Renders the project as a YAML or JSON document, so the editor can run without the real conversion services.

Usage:
    stubconverter [--address=<address>] [--transport=<transport>] [--format=<format>] [--verbose]
    stubconverter -h | --help
    stubconverter --version

Options:
    -h --help                  Show this screen.
    --version                  Show version.
    --address=<address>        Listen address [default: localhost:7777].
    --transport=<transport>    tcp or websocket [default: websocket].
    --format=<format>          yaml or json [default: yaml].
    --verbose                  Log every request.`

type options struct {
	Address   string `docopt:"--address"`
	Transport string `docopt:"--transport"`
	Format    string `docopt:"--format"`
	Verbose   bool   `docopt:"--verbose"`
}

func main() {
	opts, err := docopt.ParseArgs(_usage, os.Args[1:], _version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var o options
	if err := opts.Bind(&o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg := zap.NewDevelopmentConfig()
	if !o.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	codec, err := service.NewCodec(o.Format)
	if err != nil {
		return err
	}
	svc := service.New(codec, sugar.With("format", o.Format))

	server, err := service.NewServer(svc.Handle, o.Transport, sugar)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", o.Address)
	if err != nil {
		return err
	}
	server.Start(ln)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Stop(ctx)
}
