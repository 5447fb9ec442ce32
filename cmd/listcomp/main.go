package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/macropower/listcomp/internal/cli"
	"github.com/macropower/listcomp/pkg/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := fang.Execute(ctx, cli.NewRootCmd(),
		fang.WithVersion(version.String()),
		fang.WithErrorHandler(cli.ErrorHandler),
	)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
