package main

import (
	"fmt"

	"github.com/minijson-format/go-minijson/encode"
	"github.com/minijson-format/go-minijson/ir"
	"github.com/minijson-format/go-minijson/parse"
	"github.com/minijson-format/go-minijson/patch"

	"github.com/scott-cotton/cli"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pd, err := readArg(args[0])
	if err != nil {
		return err
	}
	patchDoc, err := parse.Parse(pd, cfg.parseOpts()...)
	if err != nil {
		return parseFailure(args[0], pd, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := patchArg(cfg, cc, arg, patchDoc); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
	}
	return nil
}

func patchArg(cfg *PatchConfig, cc *cli.Context, arg string, patchDoc *ir.Value) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return parseFailure(arg, d, err)
	}
	var res *ir.Value
	if cfg.Merge {
		res, err = patch.Merge(doc, patchDoc)
	} else {
		res, err = patch.Apply(doc, patchDoc)
	}
	if err != nil {
		return err
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
