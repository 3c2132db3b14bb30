/*
Package adalex provides the reference lexer the generated driver
templates call (emit/templates/tmpl/main_body.tmpl,
interactive_main.tmpl): a lexmachine-backed scanner that materializes its
whole input into an indexed adapgen.TokenSource up front, together with
the adapgen.KindRegistry that maps grammar-level literal spellings and
token classes to the TokType values the scanner actually produces.

adapgen's combinator algebra never invents its own kind IDs (spec.md §1
Non-goals: lexer generation is out of scope for the core); this package
is one concrete, working choice of lexer for the Ada declaration subset
adaschema builds, not a requirement every embedding application must
reuse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package adalex

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("adapgen.adalex")
}
