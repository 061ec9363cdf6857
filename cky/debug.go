package cky

import (
	"bytes"

	"github.com/npillmayer/gocky/cnf"
	"github.com/npillmayer/schuko/gconf"
)

// dumpChart traces the symbols of every non-empty cell, if configuration key
// ConfigDumpChart is set.
func dumpChart(c cells, n int) {
	if !gconf.GetBool(ConfigDumpChart) {
		return
	}
	tracer().Debugf("--- Chart n=%d ---------------------------------------", n)
	for width := 1; width <= n; width++ {
		for start := 0; start+width <= n; start++ {
			syms := c.symbols(start, start+width)
			if len(syms) == 0 {
				continue
			}
			tracer().Debugf("(%2d,%2d) %s", start, start+width, symbolSetString(syms))
		}
	}
}

func symbolSetString(syms []*cnf.Symbol) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, A := range syms {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString(" }")
	return b.String()
}
