package main

import (
	"context"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/hackasm/assembler"
)

func main() {
	app := &cli.Command{
		Name:        "hackasm",
		Description: "hackasm translates hack assembly into .hack machine code next to the source file",
		Action:      assembleAct,
		Args:        cli.Args{},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func assembleAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	if len(c.Args) != 1 {
		return errors.New("expected exactly one .asm file, got %d args", len(c.Args))
	}

	name := c.Args[0]

	obj, err := assembler.AssembleFile(ctx, name)
	if err != nil {
		return errors.Wrap(err, "assemble %v", name)
	}

	err = assembler.WriteFile(ctx, assembler.OutputPath(name), obj)
	if err != nil {
		return errors.Wrap(err, "assemble %v", name)
	}

	return nil
}
