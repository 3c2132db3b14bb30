/*
Package gtypes implements the generatable type universe of spec.md §3.1:
primitives (integer position, boolean, opaque token handle), AST node
classes (abstract/concrete, single inheritance, typed fields), anonymous
row tuples, parameterised lists, and enum types.

Every type implements the Type contract (spec.md §4.B): Name, an
IsPointerLike flag distinguishing reference- from value-semantics types,
NullExpr (the "match failed" value at this type), and an idempotent
AddToContext that registers the type's declaration/definition with a
*codegen.Context.

Per spec.md §9's redesign note, AST node classes are not discovered by
runtime reflection over a class hierarchy; DefineNode builds an explicit
*NodeSchema once, the way a derive macro or code-gen step would in a
statically-typed target language. Field type inference does need to see
a Row combinator's component types (spec.md §4.B); rather than importing
package comb (which itself imports gtypes), this package depends only on
the narrow FieldSource interface that comb.Sequence satisfies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gtypes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adapgen.gtypes'.
func tracer() tracing.Trace {
	return tracing.Select("adapgen.gtypes")
}
