package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func fxGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	for i, arg := range orStdin(args[1:]) {
		d, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := cfg.writeDoc(cc.Out, d.GetPath(path)); err != nil {
			return fmt.Errorf("error writing %q: %w", arg, err)
		}
	}
	return nil
}
