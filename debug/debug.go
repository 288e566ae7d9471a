package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Gomap bool
	Conv  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TNET_DEBUG_PARSE")
	d.Gomap = boolEnv("TNET_DEBUG_GOMAP")
	d.Conv = boolEnv("TNET_DEBUG_CONV")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Gomap() bool {
	return d.Gomap
}
func Conv() bool {
	return d.Conv
}
