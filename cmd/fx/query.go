package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon/query"

	"github.com/scott-cotton/cli"
)

func fxQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e <expr>", cli.ErrUsage)
	}
	for i, arg := range orStdin(args) {
		d, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		res, err := query.Eval(cfg.Expr, d)
		if err != nil {
			return fmt.Errorf("error querying %q: %w", arg, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return fmt.Errorf("error writing %q: %w", arg, err)
		}
	}
	return nil
}
