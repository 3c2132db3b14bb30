package codegen

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// CompileError is a grammar-construction error (spec.md §7.1): fatal,
// never caught-and-continued. It names the combinator or type that
// triggered it so a grammar author can locate the offending rule.
type CompileError struct {
	Subject string // combinator/type/rule name, for diagnostics
	Msg     string
}

func (e *CompileError) Error() string {
	if e.Subject == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Subject, e.Msg)
}

// Errorf builds a *CompileError.
func Errorf(subject, format string, args ...interface{}) *CompileError {
	return &CompileError{Subject: subject, Msg: fmt.Sprintf(format, args...)}
}

// Context is the compilation context (spec.md §4.E): it collects every
// emitted artefact for one invocation of the generator and enforces
// single-definition across the whole grammar. A Context is constructed
// fresh per generate() call (spec.md §3.4) and is append-only thereafter.
type Context struct {
	TypesDeclarations     *arraylist.List // type declarations, in first-encountered order
	TypesDefinitions      *arraylist.List // pointer-semantic type definitions (Row defs prepended, §5 ordering rule i)
	ValueTypeDefinitions  *arraylist.List // value-semantic type definitions (enums, primitives) — concatenated before pointer types, §5 ordering rule ii
	FunctionDeclarations  *arraylist.List // generated function signatures
	FunctionBodies        *arraylist.List // generated function bodies

	compiledTypes *treeset.Set // names of types already registered
	compiledFns   *treeset.Set // generated function names already emitted

	RulesToFnNames map[string]string // external entry-point lookup, spec.md §4.E

	ConcreteNodeClasses []string // every concrete AST node class seen, first-encountered order

	counters map[string]int // name generator state, spec.md §4.A / §9
}

// NewContext constructs a fresh, empty compilation context.
func NewContext() *Context {
	return &Context{
		TypesDeclarations:    arraylist.New(),
		TypesDefinitions:     arraylist.New(),
		ValueTypeDefinitions: arraylist.New(),
		FunctionDeclarations: arraylist.New(),
		FunctionBodies:       arraylist.New(),
		compiledTypes:        treeset.NewWith(utils.StringComparator),
		compiledFns:          treeset.NewWith(utils.StringComparator),
		RulesToFnNames:       map[string]string{},
		counters:             map[string]int{},
	}
}

// Gen returns a fresh, unique identifier "<prefix>_<n>" for the given
// prefix (spec.md §4.A). Uniqueness is guaranteed per Context, per prefix.
func (c *Context) Gen(prefix string) string {
	c.counters[prefix]++
	return fmt.Sprintf("%s_%d", prefix, c.counters[prefix])
}

// GenAll generates one fresh name per prefix, in order.
func (c *Context) GenAll(prefixes ...string) []string {
	names := make([]string, len(prefixes))
	for i, p := range prefixes {
		names[i] = c.Gen(p)
	}
	return names
}

// HasType reports whether a type name has already been registered.
func (c *Context) HasType(name string) bool {
	return c.compiledTypes.Contains(name)
}

// MarkType registers a type name as processed. Idempotent.
func (c *Context) MarkType(name string) {
	c.compiledTypes.Add(name)
}

// AddTypeDecl appends a type declaration fragment.
func (c *Context) AddTypeDecl(s string) {
	c.TypesDeclarations.Add(s)
}

// AddTypeDef appends a pointer-semantic type definition fragment.
func (c *Context) AddTypeDef(s string) {
	c.TypesDefinitions.Add(s)
}

// PrependTypeDef inserts a type definition fragment at the front of the
// pointer-semantic type-definitions bag. Row types use this (spec.md §5
// ordering rule i: "Row type definitions are prepended so they precede
// any type that embeds them").
func (c *Context) PrependTypeDef(s string) {
	c.TypesDefinitions.Insert(0, s)
}

// AddValueTypeDef appends a value-semantic (enum, primitive) type
// definition fragment.
func (c *Context) AddValueTypeDef(s string) {
	c.ValueTypeDefinitions.Add(s)
}

// HasFn reports whether a generated function name has already been
// emitted.
func (c *Context) HasFn(name string) bool {
	return c.compiledFns.Contains(name)
}

// MarkFn registers a generated function name as emitted. Idempotent.
func (c *Context) MarkFn(name string) {
	c.compiledFns.Add(name)
}

// AddFnDecl appends a generated function signature.
func (c *Context) AddFnDecl(s string) {
	c.FunctionDeclarations.Add(s)
}

// AddFnBody appends a generated function body.
func (c *Context) AddFnBody(s string) {
	c.FunctionBodies.Add(s)
}

// AddConcreteNode records a concrete AST node class by name, supporting
// the generated node_kind_enum (the [EXPANSION] discriminated-kind
// enumeration SPEC_FULL.md adds for a generic AST walker to switch on).
func (c *Context) AddConcreteNode(name string) {
	c.ConcreteNodeClasses = append(c.ConcreteNodeClasses, name)
}

// RegisterRuleFn records which generated function implements a named
// grammar rule, supporting external entry-point lookup (spec.md §4.E).
func (c *Context) RegisterRuleFn(rule, fnName string) {
	c.RulesToFnNames[rule] = fnName
}

// TraceCompile logs a stable, hashed diagnostic key for the start of a
// rule's compilation, so repeated runs against the same grammar can be
// correlated in trace output. Grounded on lr/earley/earley.go's own use of
// structhash to derive a dedup key from a small anonymous struct.
func (c *Context) TraceCompile(ruleName string, ordinal int) {
	key, err := structhash.Hash(struct {
		Rule    string
		Ordinal int
	}{Rule: ruleName, Ordinal: ordinal}, 1)
	if err != nil {
		// structhash only fails on unhashable inputs; a (string, int)
		// struct is always hashable, so this is unreachable in practice.
		panic(err)
	}
	tracer().Debugf("compiling rule %q [%s]", ruleName, key)
}

// StringsOf returns the bag's elements as a []string, in append order.
func StringsOf(bag *arraylist.List) []string {
	vals := bag.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}
