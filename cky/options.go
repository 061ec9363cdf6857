package cky

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/pkg/errors"
)

// Configuration keys consulted by this package.
const (
	ConfigTreeBudget = "cky-tree-budget" // int: default node budget for Parse, 0 = unlimited
	ConfigDumpChart  = "cky-dump-chart"  // bool: dump filled charts to the tracer
)

// ErrBudgetExceeded is returned by Parse if tree extraction would construct
// more tree nodes than allowed by the budget.
var ErrBudgetExceeded = errors.New("tree budget exceeded")

// Option configures a single parse.
type Option func(c *config)

type config struct {
	budget int // max. number of tree nodes to construct, 0 = unlimited
}

// WithBudget limits the number of tree nodes Parse may construct. Shared
// subtrees are counted once. A budget of 0 means unlimited.
func WithBudget(nodes int) Option {
	return func(c *config) {
		if nodes < 0 {
			nodes = 0
		}
		c.budget = nodes
	}
}

func newConfig(opts []Option) config {
	c := config{budget: gconf.GetInt(ConfigTreeBudget)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
