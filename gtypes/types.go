package gtypes

import "github.com/npillmayer/adapgen/codegen"

// Type is the contract every member of the generatable type universe
// implements (spec.md §4.B).
type Type interface {
	// Name is the stable identifier used for this type in emitted code.
	Name() string
	// IsPointerLike distinguishes reference-semantics types (AST node,
	// Row, List) from value-semantics types (primitive, Enum).
	IsPointerLike() bool
	// NullExpr is the Go expression used when a combinator fails and must
	// still fill a result slot.
	NullExpr() string
	// AddToContext idempotently registers this type's declaration and
	// definition with ctx. src is the combinator supplying component
	// types, when one is available (nil otherwise).
	AddToContext(ctx *codegen.Context, src FieldSource)
}

// FieldSource is the narrow view gtypes needs of a sequence combinator in
// order to infer AST node field types (spec.md §4.B): its ordered
// component types, and whether a given component is discarded. comb.Sequence
// implements this; gtypes never imports comb itself, breaking what would
// otherwise be a dependency cycle (spec.md §9's "pass an explicit
// per-emission environment" redesign note, applied to the type system as
// well as to combinator emission).
type FieldSource interface {
	Components() []Type
	DiscardAt(i int) bool
}

// GoTypeRef renders the Go type reference for t, as it should appear in a
// struct field, a variable declaration, or a function signature: pointer
// types get a leading "*" (a List's backing slice type is already a
// reference type in Go, so it is exempted). A nil Type means "result type
// could not be inferred" (spec.md §4.C: a Deferred combinator caught in a
// self-recursive lock yields this); callers render it as interface{} so
// cyclic grammars still produce syntactically valid, if imprecise, code.
func GoTypeRef(t Type) string {
	if t == nil {
		return "interface{}"
	}
	switch t.(type) {
	case *ListType:
		// A List's backing slice is already a Go reference type.
		return t.Name()
	case *ASTNodeType:
		// Every AST node class, abstract or concrete, is represented by
		// a Go interface (see astnode_type_decl): referencing it never
		// takes an explicit "*".
		return t.Name()
	}
	if t.IsPointerLike() {
		return "*" + t.Name()
	}
	return t.Name()
}

// singleField adapts a single Type into a FieldSource of exactly one,
// non-discarded component (spec.md §3.3 invariant 2: "If the combinator is
// a single non-sequence expression, it supplies one field").
type singleField struct {
	t Type
}

// SingleField wraps t as a one-component FieldSource.
func SingleField(t Type) FieldSource { return singleField{t: t} }

func (s singleField) Components() []Type   { return []Type{s.t} }
func (s singleField) DiscardAt(i int) bool { return false }

// FieldGoName exports the Go struct-field identifier a schema field name
// maps to, for callers outside gtypes (comb's Transform and List fold
// variant) that need to construct a node-class struct literal.
func FieldGoName(name string) string { return exportedIdent(name) }
