//go:build !tinygo

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"

	"keymatrix/app"
	"keymatrix/config"
	"keymatrix/hal"
)

type CLI struct {
	Headless bool   `help:"Run without a window."`
	Hz       int    `default:"1000" help:"Cycle rate in headless mode."`
	Cycles   uint64 `default:"0" help:"Stop after N cycles in headless mode (0 = run forever)."`
	Profile  string `help:"Board profile TOML (timing and key remaps)." type:"path"`
	Quiet    bool   `help:"Suppress diagnostic output."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("keymatrix"),
		kong.Description("Matrix keyboard controller with a simulated connector."),
		kong.UsageOnError(),
		kong.Configuration(kongtoml.Loader, ".keymatrix.toml"),
	)

	cfg := app.DefaultConfig()
	if cli.Profile != "" {
		p, err := config.Load(cli.Profile)
		kctx.FatalIfErrorf(err)
		kctx.FatalIfErrorf(p.Apply(&cfg.Params, cfg.Topology))
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, cfg)
	}

	if cli.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Hz:     cli.Hz,
			Cycles: cli.Cycles,
			Quiet:  cli.Quiet,
		})
		if err == context.Canceled {
			return
		}
		kctx.FatalIfErrorf(err)
		return
	}

	kctx.FatalIfErrorf(hal.RunWindow(hal.WindowConfig{
		Title: "keymatrix",
		Keys:  cfg.Topology.Legends(),
		Quiet: cli.Quiet,
	}, newApp))
}
