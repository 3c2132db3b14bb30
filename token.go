package adapgen

import "fmt"

// FailPos is the position sentinel a generated parser function returns
// when it fails to match. No input position is ever valid and equal to
// FailPos, so callers tell success from failure by comparing against it.
const FailPos int = -1

// TokenHandle is the result type of matching a single token (comb.Tok,
// comb.TokClass): the opaque "token handle" of spec.md §3.1. It is simply
// the index into the TokenSource the match was found at; callers recover
// the lexeme/span by indexing back into the TokenSource with it.
type TokenHandle int

// TokType is a numeric token-kind identifier, assigned by an external
// token-kind registry (spec.md §1: out of scope for this module). A Tok
// combinator matching the literal "with" and a TokClass combinator
// matching the identifier class both resolve to a TokType through the
// KindRegistry when the generated parser function runs.
type TokType int

// TokenClassKind names the closed set of token classes the combinator
// algebra can match against directly (comb.TokenClass), as opposed to a
// single literal spelling (comb.TokenLiteral).
type TokenClassKind int

const (
	ClassIdentifier TokenClassKind = iota
	ClassLabel
	ClassNumber
	ClassChar
	ClassString
	ClassTermination
)

//go:generate stringer -type TokenClassKind
func (k TokenClassKind) String() string {
	switch k {
	case ClassIdentifier:
		return "Identifier"
	case ClassLabel:
		return "Label"
	case ClassNumber:
		return "Number"
	case ClassChar:
		return "Char"
	case ClassString:
		return "String"
	case ClassTermination:
		return "Termination"
	default:
		return fmt.Sprintf("TokenClassKind(%d)", int(k))
	}
}

// Span marks a half-open run of input token positions [From, To), exactly
// as gorgo.Span does for a stream of scanner tokens.
type Span [2]uint64

// From returns the start value of a span.
func (s Span) From() uint64 { return s[0] }

// To returns the end value of a span.
func (s Span) To() uint64 { return s[1] }

// Len returns the length of the span.
func (s Span) Len() uint64 { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Token is what an external lexer produces at a given input position.
type Token interface {
	Kind() TokType
	Lexeme() string
	Span() Span
}

// TokenSource is the abstraction the generated parser functions expect:
// an indexed, read-only view of the token stream. Unlike a streaming
// scanner, every accessor is O(1) and the stream is never consumed —
// generated code re-reads the same position as often as it needs to
// (spec.md §3.4: "read tokens non-destructively").
type TokenSource interface {
	Len() int
	KindAt(i int) TokType
	TextAt(i int) string
	LocationAt(i int) Span
}

// UpdateFar records the furthest position a generated parser reached
// before failing (spec.md §7.2, §8 scenario 6). Generated primitive
// matchers call this on every failed match; far may be nil when a caller
// does not care about the diagnostic.
func UpdateFar(far *int, pos int) {
	if far != nil && pos > *far {
		*far = pos
	}
}

// KindRegistry maps the symbolic keyword/punctuation spellings and class
// names a grammar author writes ("with", "=>", IDENTIFIER, …) to the
// numeric TokType values a TokenSource reports. It is supplied by the
// embedding application; the core never invents kind IDs of its own.
type KindRegistry interface {
	// Literal resolves a keyword or punctuation spelling, e.g. "with".
	Literal(symbol string) (TokType, bool)
	// Class resolves one of the token classes in TokenClassKind.
	Class(class TokenClassKind) (TokType, bool)
}
