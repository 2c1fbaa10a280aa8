package encode

import (
	"github.com/fatih/color"
)

// Class identifies what a rendered span is, for coloring.
type Class int

const (
	ElementClass Class = iota
	CountClass
	OpClass
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Class]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[Class]func(string, ...any) string{
			ElementClass: color.RGB(128, 168, 196).SprintfFunc(),
			CountClass:   color.RGB(128, 216, 236).SprintfFunc(),
			OpClass:      color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cl Class, s string) string {
	f := c.Map[cl]
	if f == nil {
		f = c.Default
	}
	return f(s)
}
