package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc retains the tokenized input so offsets can be reported as
// line/column positions with surrounding context.
type Doc struct {
	d  []byte
	nl []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.nl = append(doc.nl, i)
		}
	}
	return doc
}

func (d *Doc) Pos(i int) *Pos {
	return &Pos{I: i, D: d}
}

func (d *Doc) LineCol(off int) (int, int) {
	n := len(d.nl)
	li := sort.Search(n, func(i int) bool {
		return d.nl[i] >= off
	})
	if li == 0 {
		return 0, off
	}
	return li, off - d.nl[li-1] - 1
}

type Pos struct {
	I int
	D *Doc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
