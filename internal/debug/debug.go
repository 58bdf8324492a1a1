// Package debug gates trace logging on environment variables so parser
// recovery can be observed without a debugger.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("FX_DEBUG_DECODE")
	d.Patch = boolEnv("FX_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}

func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
