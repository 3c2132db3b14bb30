/*
Package grammar holds a named collection of grammar rules (spec.md §4.D):
a simple name → combinator map, together with the bulk-declaration step
that assigns each rule's name, marks its top combinator as root, and
supports forward/mutually-recursive rule references via comb.Deferred.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("adapgen.grammar")
}
