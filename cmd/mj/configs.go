package main

import (
	"io"
	"os"
	"strings"

	"github.com/minijson-format/go-minijson/encode"
	"github.com/minijson-format/go-minijson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='render with color'"`
	Strict bool `cli:"name=strict desc='reject trailing commas before ] and }'"`
	Indent int  `cli:"name=indent desc='indent width (default 2)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	indent := cfg.Indent
	if indent <= 0 {
		indent = 2
	}
	res := []encode.EncodeOption{
		encode.EncodeIndent(strings.Repeat(" ", indent)),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	Time bool `cli:"name=time desc='report read and parse durations'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Env map[string]any

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type YamlConfig struct {
	*MainConfig

	Yaml *cli.Command
}
