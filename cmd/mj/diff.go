package main

import (
	"fmt"

	"github.com/minijson-format/go-minijson/ir"
	"github.com/minijson-format/go-minijson/libdiff"
	"github.com/minijson-format/go-minijson/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := diffArg(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffArg(cfg, args[1])
	if err != nil {
		return err
	}
	var out string
	if cfg.Color {
		out = libdiff.Pretty(from, to)
	} else {
		out = libdiff.Text(from, to)
	}
	if out == "" {
		return nil
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func diffArg(cfg *DiffConfig, arg string) (*ir.Value, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, parseFailure(arg, d, err)
	}
	return doc, nil
}
