/*
Package comb implements the combinator algebra grammar rules are built
from (spec.md §4.C): matching primitives over a token stream, sequencing,
alternation, repetition, and the AST-construction combinators that bind a
match to a gtypes node class.

Every combinator answers three questions about itself: its statically
inferred result type, whether that result is pointer-like, and how to emit
a parser fragment for it given a starting token-index variable. A
combinator is compiled into its own function when it is a named grammar
rule (root) or referenced from more than one place; otherwise its code is
inlined at the single call site.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package comb

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("adapgen.comb")
}
