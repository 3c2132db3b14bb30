/*
Package codegen implements the compilation context (spec.md §4.E) and the
name generator (spec.md §4.A) shared by every combinator and type during
code generation.

The Context is the sole source of truth for the "emit exactly once"
discipline spec.md §3.3 invariant 4 and §8's emit-once property demand:
every type declaration/definition and every generated function body is
appended to an ordered, append-only bag, and membership sets record which
type and function names are already registered. The bags themselves do not
deduplicate: callers consult HasType/HasFn before appending and skip a name
that is already there.

Per spec.md §9's redesign note ("Process-wide counters: replace with a
counter owned by the compilation context"), the per-prefix name counter is
a field on Context rather than a package-level global: two Contexts never
share name state, which is what makes the emit-once property trivially
testable (spec.md §8) across repeated compilations of the same grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codegen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adapgen.codegen'.
func tracer() tracing.Trace {
	return tracing.Select("adapgen.codegen")
}
