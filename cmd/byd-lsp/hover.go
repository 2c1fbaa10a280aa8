package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/bydysawd/byd-format/byd"
	"github.com/bydysawd/byd-format/byd/ir"
	"github.com/bydysawd/byd-format/byd/libdiff"
	"github.com/bydysawd/byd-format/byd/parse"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	li := int(params.Position.Line)
	if li < 0 || li >= len(doc.lines) {
		return nil, nil
	}
	ln := doc.lines[li]
	if ln.eq == nil {
		return nil, nil
	}

	hoverText := buildHoverText(ln, int(params.Position.Character))
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// segmentAt returns the formula segment of text containing col, where
// segments are delimited by '=' and '+'.
func segmentAt(text string, col int) string {
	bounds := append(ir.IndicesOf(text, '='), ir.IndicesOf(text, '+')...)
	start, end := 0, len(text)
	for _, b := range bounds {
		if b < col && b+1 > start {
			start = b + 1
		}
		if b >= col && b < end {
			end = b
		}
	}
	if start > end {
		return ""
	}
	return strings.TrimSpace(text[start:end])
}

func buildHoverText(ln *line, col int) string {
	parts := []string{}

	if seg := segmentAt(ln.text, col); seg != "" {
		if fs, err := parse.Side([]byte(seg)); err == nil && len(fs) == 1 {
			f := fs[0]
			parts = append(parts, fmt.Sprintf("**Formula:** `%s`", f))
			parts = append(parts, fmt.Sprintf("**Canonical:** `%s`", f.Standardized()))
		}
	}

	verdict := "balanced"
	if !byd.Balanced(ln.eq) {
		ds := libdiff.Sides(ln.eq)
		ss := make([]string, 0, len(ds))
		for _, d := range ds {
			ss = append(ss, d.String())
		}
		verdict = "unbalanced: " + strings.Join(ss, ", ")
	}
	parts = append(parts, fmt.Sprintf("**Equation:** `%s` (%s)", ln.eq, verdict))

	return strings.Join(parts, "\n\n")
}
