package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mkpy/cmd/mkpy/commands"
	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("mkpy"),
		kong.Description("Minimalistic documentation generator and server"),
		kong.UsageOnError(),
	)

	global := &commands.Global{}
	if err := parser.Run(global, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
