package main

import (
	"fmt"

	"github.com/flexon-format/go-flexon"
	"github.com/flexon-format/go-flexon/data"

	"github.com/scott-cotton/cli"
)

func fxPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	patch, err := cfg.readArg(cfg.File)
	if err != nil {
		return err
	}
	for i, arg := range orStdin(args) {
		d, err := cfg.readArg(arg)
		if err != nil {
			return err
		}
		res, err := applyPatch(cfg, d, patch)
		if err != nil {
			return fmt.Errorf("error patching %q: %w", arg, err)
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

// applyPatch picks the patch flavor: a list is an RFC 6902 operation
// list, anything else is an RFC 7386 merge patch. -merge forces the
// latter, which matters for a patch that is itself a list.
func applyPatch(cfg *PatchConfig, doc, patch *data.Data) (*data.Data, error) {
	if !cfg.Merge && patch.IsList() {
		return flexon.Patch(doc, patch)
	}
	return flexon.MergePatch(doc, patch)
}
