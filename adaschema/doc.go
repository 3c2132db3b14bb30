/*
Package adaschema is a reference Ada declarative grammar built on top of
the comb/grammar/gtypes core: the AST node classes and grammar rules for
context clauses, aspect specifications, object and number declarations,
parameter profiles, pragmas, and package declarations — a representative
subset of the Ada declaration grammar, not the whole language (see
NewGrammar's doc comment for what was trimmed and why).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package adaschema

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("adapgen.adaschema")
}
