package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd"
	"github.com/bydysawd/byd-format/byd/libdiff"
	"github.com/bydysawd/byd-format/byd/parse"
)

func balance(cfg *BalanceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Balance.Parse(cc, args)
	if err != nil {
		return err
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
		if byd.Balanced(eq) {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: balanced\n", eq)
			}
			continue
		}
		bad++
		if cfg.Quiet {
			continue
		}
		ds := libdiff.Sides(eq)
		ss := make([]string, 0, len(ds))
		for _, d := range ds {
			ss = append(ss, d.String())
		}
		fmt.Fprintf(cc.Out, "%s: unbalanced (%s)\n", eq, strings.Join(ss, ", "))
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
