package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	Canon bool `cli:"name=canon desc='standardize formulas before printing'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{
		encode.Canonical(cfg.Canon),
	}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

// inputs returns the notation strings to operate on: the positional args
// when present, otherwise the non-blank lines of standard input.
func inputs(cc *cli.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	lines := []string{}
	for _, ln := range strings.Split(string(d), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		lines = append(lines, ln)
	}
	return lines, nil
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type BalanceConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='no output, exit status only'"`

	Balance *cli.Command
}

type IsomerConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='no output, exit status only'"`

	Isomer *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Sides bool `cli:"name=sides desc='diff the two sides of an equation'"`

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='predicate to evaluate'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='dump as json'"`
	Y bool `cli:"name=y aliases=yaml desc='dump as yaml (default)'"`

	Dump *cli.Command
}
