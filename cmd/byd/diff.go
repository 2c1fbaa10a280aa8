package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd/ir"
	"github.com/bydysawd/byd-format/byd/libdiff"
	"github.com/bydysawd/byd-format/byd/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	var from, to *ir.Formula
	if cfg.Sides {
		if len(args) != 1 {
			return fmt.Errorf("%w: diff -sides requires 1 equation, got %v", cli.ErrUsage, args)
		}
		eq, err := parse.Equation([]byte(args[0]))
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", args[0], err)
		}
		from, to = ir.Aggregate(eq.LHS), ir.Aggregate(eq.RHS)
	} else {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff requires 2 formulas, got %v", cli.ErrUsage, args)
		}
		if from, err = parse.Formula([]byte(args[0])); err != nil {
			return fmt.Errorf("error parsing %q: %w", args[0], err)
		}
		if to, err = parse.Formula([]byte(args[1])); err != nil {
			return fmt.Errorf("error parsing %q: %w", args[1], err)
		}
	}
	ds := libdiff.Make(from, to)
	if len(ds) == 0 {
		fmt.Fprintf(cc.Out, "no atom difference (%s)\n", from.Standardized())
		return nil
	}
	if err := libdiff.RenderString(cc.Out, from.Standardized().String(), to.Standardized().String()); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	for _, d := range ds {
		fmt.Fprintf(cc.Out, "  %s\n", d)
	}
	return cli.ExitCodeErr(1)
}
