/*
Package adapgen implements the core of a parser-generator for Ada: a
combinator algebra for describing grammar rules, an AST schema mechanism for
declaring strongly-typed node classes, and a code-generation engine that
lowers a grammar tree into native Go source for a recursive-descent parser.

The combinator algebra lives in sub-package comb, the type system (AST node
classes, enums, rows, lists) in gtypes, the append-only compilation context
in codegen, the code generator and its templates in emit and
emit/templates, and grammar containers in grammar.

This top-level package only holds the contracts that the core treats as
external collaborators: an indexed token source and a token-kind registry.
Neither a lexer nor a concrete Ada grammar lives here — see adalex and
adaschema for a reference lexer and a reference grammar built on top of
this core.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package adapgen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
