// Package debug gates optional diagnostics on MAYDOC_DEBUG_* environment
// variables, read once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("MAYDOC_DEBUG_EVAL")
	d.Patch = boolEnv("MAYDOC_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
