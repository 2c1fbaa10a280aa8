package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/bydysawd/byd-format/byd"
	"github.com/bydysawd/byd-format/byd/ir"
	"github.com/bydysawd/byd-format/byd/parse"
)

type termDoc struct {
	Element string `json:"element" yaml:"element"`
	Count   int    `json:"count" yaml:"count"`
}

type formulaDoc struct {
	Display   string    `json:"display" yaml:"display"`
	Canonical string    `json:"canonical" yaml:"canonical"`
	Terms     []termDoc `json:"terms" yaml:"terms"`
}

type equationDoc struct {
	Display  string       `json:"display" yaml:"display"`
	Balanced bool         `json:"balanced" yaml:"balanced"`
	LHS      []formulaDoc `json:"lhs" yaml:"lhs"`
	RHS      []formulaDoc `json:"rhs" yaml:"rhs"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	ins, err := inputs(cc, args)
	if err != nil {
		return err
	}
	for i, in := range ins {
		eq, err := parse.Equation([]byte(in))
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", in, err)
		}
		doc := makeDoc(eq)
		var d []byte
		if cfg.J {
			d, err = json.MarshalIndent(doc, "", "  ")
		} else {
			d, err = yaml.Marshal(doc)
		}
		if err != nil {
			return fmt.Errorf("error encoding %q: %w", in, err)
		}
		if i > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if cfg.J {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func makeDoc(eq *ir.Equation) *equationDoc {
	return &equationDoc{
		Display:  eq.String(),
		Balanced: byd.Balanced(eq),
		LHS:      sideDocs(eq.LHS),
		RHS:      sideDocs(eq.RHS),
	}
}

func sideDocs(side []*ir.Formula) []formulaDoc {
	docs := make([]formulaDoc, 0, len(side))
	for _, f := range side {
		fd := formulaDoc{
			Display:   f.String(),
			Canonical: f.Standardized().String(),
		}
		for _, t := range f.Terms() {
			fd.Terms = append(fd.Terms, termDoc{Element: string(t.Element), Count: t.Count})
		}
		docs = append(docs, fd)
	}
	return docs
}
