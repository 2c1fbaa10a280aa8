package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd/eval"
	"github.com/bydysawd/byd-format/byd/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: check requires -e <predicate>", cli.ErrUsage)
	}
	ins, err := inputs(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, in := range ins {
		eq, err := parse.Equation([]byte(in))
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		ok, err := eval.Check(eq, cfg.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", eq, ok)
		if !ok {
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
