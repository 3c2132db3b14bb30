/*
Package emit is the code generator (spec.md §4.F): it drives every named
rule of a grammar.Grammar through comb's Emit contract against a single
codegen.Context, then renders that context's bags into the three textual
deliverables spec.md §6 asks for — a header, a body, and an optional
interactive driver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emit

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("adapgen.emit")
}
