package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "byd").
		WithSynopsis("byd [opts] command [opts]").
		WithDescription("byd is a tool for working with Bydysawd chemical notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bydMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			BalanceCommand(cfg),
			IsomerCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg),
			DumpCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [equations]").
		WithDescription("parse equations and print them normalized").
		WithRun(func(cc *cli.Context, args []string) error {
			return bydFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func BalanceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BalanceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("balance").
		WithAliases("b", "bal").
		WithSynopsis("balance [opts] [equations]").
		WithDescription("check that equations have the same atom counts on both sides").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return balance(cfg, cc, args)
		})
	cfg.Balance = cmd
	return cmd
}

func IsomerCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IsomerConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("isomer").
		WithAliases("i", "iso").
		WithSynopsis("isomer [opts] <formula> <formula>").
		WithDescription("check that two formulas contain the same atoms").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return isomer(cfg, cc, args)
		})
	cfg.Isomer = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <formula> <formula> | diff -sides <equation>").
		WithDescription("show how two formulas, or an equation's sides, differ in atom content").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check -e <predicate> [equations]").
		WithDescription("evaluate an expr predicate against equations").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithSynopsis("dump [-y|-j] [equations]").
		WithDescription("dump parsed equation structure as yaml or json").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}
