package grammar

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/comb"
)

// Grammar holds a named collection of rules (spec.md §4.D): a
// rule-name → combinator tree map. Rules are added in bulk so that a
// rule referencing another rule declared later in the same call can do
// so via Rule, which returns a comb.Deferred standing in for the
// not-yet-added rule.
type Grammar struct {
	rules map[string]comb.Combinator
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{rules: map[string]comb.Combinator{}}
}

// AddRules declares a batch of named rules at once (spec.md §4.D): each
// rule's name is assigned, its top combinator stamped as root, and an
// external caller can look the combinator back up by name via Rule.
// Declaring rules in one call, rather than one at a time, is what lets
// mutually-recursive rules reference each other through Rule before every
// name in the batch has been assigned.
func (g *Grammar) AddRules(rules map[string]comb.Combinator) {
	for name, c := range rules {
		c.MarkRoot(name)
		g.rules[name] = c
	}
}

// Rule looks up a named rule. If the rule has not been added yet (the
// forward-reference case spec.md §4.D describes — "supports mutual
// recursion between rules declared later"), it returns a comb.Deferred
// that resolves once AddRules has been called for that name; looking it
// up before that happens is a grammar-construction bug and panics with a
// clear message rather than deferring forever.
func (g *Grammar) Rule(name string) comb.Combinator {
	if c, ok := g.rules[name]; ok {
		return c
	}
	return comb.Defer(func() comb.Combinator {
		c, ok := g.rules[name]
		if !ok {
			panic(codegen.Errorf(name, "grammar rule was never added"))
		}
		return c
	})
}

// Rules returns the grammar's rule-name → combinator map. Map iteration
// order is not defined; a caller needing a fixed order (emit.Generate)
// sorts the names itself.
func (g *Grammar) Rules() map[string]comb.Combinator {
	return g.rules
}
