package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd/encode"
	"github.com/bydysawd/byd-format/byd/parse"
)

func bydFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := inputs(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, in := range ins {
		eq, err := parse.Equation([]byte(in))
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		if err := encode.Equation(eq, cc.Out, opts...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
