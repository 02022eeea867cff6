package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minijson-format/go-minijson/encode"
	"github.com/minijson-format/go-minijson/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := viewFile(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	readStart := time.Now()
	d, err := readArg(file)
	if err != nil {
		return err
	}
	if cfg.Time {
		theLog.Info("read", "file", file, "duration", time.Since(readStart))
	}

	parseStart := time.Now()
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return parseFailure(file, d, err)
	}
	if cfg.Time {
		theLog.Info("parse", "file", file, "duration", time.Since(parseStart))
	}

	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// parseFailure reports a parse error with its offset and a caret snippet,
// then signals a nonzero exit.
func parseFailure(file string, d []byte, err error) error {
	var pErr *parse.Error
	if !errors.As(err, &pErr) {
		return err
	}
	fmt.Fprintf(os.Stderr, "could not parse %s: %s at %d\n%s\n",
		file, pErr.Message(), pErr.Cursor, parse.Context(d, pErr.Cursor))
	return cli.ExitCodeErr(1)
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}
