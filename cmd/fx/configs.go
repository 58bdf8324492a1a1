package main

import (
	"fmt"
	"io"
	"os"

	"github.com/flexon-format/go-flexon/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact wire format'"`
	Indent  int  `cli:"name=indent desc='output with n-space indentation'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if cfg.Y {
		return YAMLFormat
	}
	return JSONFormat
}

func (cfg *MainConfig) outFormat() Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return YAMLFormat
	}
	return JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.WireOut {
		res = append(res, encode.Wire())
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.Colors(encode.NewColors()))
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
		res = append(res, encode.Colors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='expression to evaluate'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File  string `cli:"name=p desc='file containing the patch document'"`
	Merge bool   `cli:"name=merge desc='force merge-patch semantics'"`

	Patch *cli.Command
}
