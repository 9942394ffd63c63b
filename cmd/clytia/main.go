package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/simonhull/clytia"
	"github.com/simonhull/clytia/internal/commands"
	"github.com/simonhull/clytia/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := commands.Execute(ctx, commands.NewApp())
	if err != nil && !errors.Is(err, clytia.ErrCancelled) && !errors.Is(err, commands.ErrDeclined) {
		output.Error(err.Error())
	}

	stop()
	os.Exit(commands.ExitCode(err))
}
