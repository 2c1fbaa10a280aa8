package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd"
	"github.com/bydysawd/byd-format/byd/libdiff"
	"github.com/bydysawd/byd-format/byd/parse"
)

func isomer(cfg *IsomerConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Isomer.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: isomer requires 2 formulas, got %v", cli.ErrUsage, args)
	}
	a, err := parse.Formula([]byte(args[0]))
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	b, err := parse.Formula([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[1], err)
	}
	if byd.Isomer(a, b) {
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s and %s are isomers (%s)\n", a, b, a.Standardized())
		}
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s and %s are not isomers:\n", a, b)
		for _, d := range libdiff.Make(a, b) {
			fmt.Fprintf(cc.Out, "  %s\n", d)
		}
	}
	return cli.ExitCodeErr(1)
}
