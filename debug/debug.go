package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Token bool
	Parse bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("BYD_DEBUG_TOKEN")
	d.Parse = boolEnv("BYD_DEBUG_PARSE")
	d.Eval = boolEnv("BYD_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
