// Package main demonstrates usage of the scg-result packages.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

var levelFlag = cli.StringFlag{
	Name:  "level",
	Usage: "log level (debug, info, warn, error)",
	Value: "info",
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "example",
		Usage:  "walks through producing and consuming results",
		Flags:  []cli.Flag{&levelFlag},
		Action: runAction,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAction(ctx *cli.Context) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(ctx.String(levelFlag.Name))); err != nil {
		return fmt.Errorf("invalid --%s: %w", levelFlag.Name, err)
	}

	log := slog.New(tint.NewHandler(ctx.App.Writer, &tint.Options{Level: lvl, TimeFormat: time.Kitchen}))

	return run(ctx.Context, log)
}
