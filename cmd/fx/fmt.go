package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func fxFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	args = orStdin(args)
	for i, arg := range args {
		d, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, d); err != nil {
			return fmt.Errorf("error writing %q: %w", arg, err)
		}
	}
	return nil
}
