package gtypes

import "github.com/npillmayer/adapgen/codegen"

// PrimitiveKind names the closed set of value-semantics primitive types
// (spec.md §3.1).
type PrimitiveKind int

const (
	KindIntegerPos PrimitiveKind = iota
	KindBoolean
	KindTokenHandle
)

// Primitive is a value-semantics primitive type: integer position,
// boolean, or opaque token handle.
type Primitive struct {
	Kind PrimitiveKind
}

// Well-known primitive instances. Primitives need no per-grammar identity,
// so these singletons are shared across every combinator that needs one.
var (
	Integer     Type = &Primitive{Kind: KindIntegerPos}
	Boolean     Type = &Primitive{Kind: KindBoolean}
	TokenHandle Type = &Primitive{Kind: KindTokenHandle}
)

func (p *Primitive) Name() string {
	switch p.Kind {
	case KindBoolean:
		return "bool"
	case KindTokenHandle:
		return "adapgen.TokenHandle"
	default:
		return "int"
	}
}

func (p *Primitive) IsPointerLike() bool { return false }

func (p *Primitive) NullExpr() string {
	switch p.Kind {
	case KindBoolean:
		return "false"
	default:
		// integer position / token handle: undefined by spec.md §3.1,
		// rendered as the same failure sentinel a position uses so that
		// an accidental read is at least recognizable in a debugger.
		return "adapgen.FailPos"
	}
}

// AddToContext is a no-op: Go's predeclared int/bool types and the
// root package's TokenHandle alias need no per-grammar declaration.
func (p *Primitive) AddToContext(ctx *codegen.Context, src FieldSource) {}
