package main

import (
	"fmt"

	"github.com/minijson-format/go-minijson/eval"
	"github.com/minijson-format/go-minijson/parse"

	"github.com/scott-cotton/cli"
)

func toYaml(cfg *YamlConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Yaml.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return parseFailure(arg, d, err)
		}
		y, err := eval.MarshalYAML(doc)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(y); err != nil {
			return err
		}
	}
	return nil
}
