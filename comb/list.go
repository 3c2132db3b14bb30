package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// List parses zero-or-more (or one-or-more, if EmptyValid is false)
// Elem productions separated by Sep (spec.md §4.C List). When FoldNode is
// set, the matched elements are folded right-to-left through that binary
// AST class instead of collected into a flat slice (the "right-reducing
// tree" variant, spec.md §9: the sanctioned idiom for left-associative
// operator chains expressed right-recursively).
type List struct {
	base
	Elem       Combinator
	Sep        Combinator
	EmptyValid bool
	FoldNode   *gtypes.ASTNodeType // must declare exactly two fields: left, right

	listType *gtypes.ListType
}

// ListOf builds a List over elem, with an optional separator. Elem (and
// Sep, if given) are force-compiled into standalone functions — double-
// referenced here — because the generated code must call them repeatedly
// from a runtime loop, which only a function call site (not inlined
// statements) supports.
func ListOf(elem Combinator, sep Combinator, emptyValid bool) *List {
	elem.AddRef()
	elem.AddRef()
	if sep != nil {
		sep.AddRef()
		sep.AddRef()
	}
	return &List{Elem: elem, Sep: sep, EmptyValid: emptyValid}
}

// Fold switches l to the right-reducing tree variant, folding matched
// elements through node (spec.md §4.C "right-reducing tree variant").
func (l *List) Fold(node *gtypes.ASTNodeType) *List {
	l.FoldNode = node
	return l
}

func (l *List) InferType() gtypes.Type {
	return l.memoType(func() gtypes.Type {
		if l.FoldNode != nil {
			return l.FoldNode
		}
		if l.listType == nil {
			l.listType = gtypes.NewListType(l.Elem.InferType())
		}
		return l.listType
	})
}

func (l *List) NeedsRefcount() bool { return true }

type listCodeEnv struct {
	OrigPos    string
	CurPos     string
	FinalPos   string
	ResultVar  string
	ListGoType string
	ElemCode   string
	ElemPos    string
	ElemResult string
	HasSep     bool
	SepCode    string
	SepPos     string
	EmptyValid bool
}

func (l *List) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(l)
	return l.emitOrCall(ctx, pos, l, "list", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		t := l.InferType()
		t.AddToContext(ctx, nil)

		curPos := ctx.Gen("cur")
		finalPos := ctx.Gen("p")
		resVar := ctx.Gen("res")

		elemEm := l.Elem.Emit(ctx, curPos)
		var sepEm Emission
		hasSep := l.Sep != nil
		if hasSep {
			sepEm = l.Sep.Emit(ctx, curPos)
		}

		locals := []string{curPos + " int", finalPos + " int"}
		locals = append(locals, elemEm.Locals...)
		locals = append(locals, sepEm.Locals...)

		if l.FoldNode == nil {
			locals = append(locals, resVar+" "+gtypes.GoTypeRef(t))
			code := templates.Render("list_code", listCodeEnv{
				OrigPos: posVar, CurPos: curPos, FinalPos: finalPos, ResultVar: resVar,
				ListGoType: gtypes.GoTypeRef(t),
				ElemCode:   elemEm.Code, ElemPos: elemEm.Pos, ElemResult: elemEm.Result,
				HasSep: hasSep, SepCode: sepEm.Code, SepPos: sepEm.Pos,
				EmptyValid: l.EmptyValid,
			})
			return resVar, finalPos, code, locals
		}

		// Right-reducing tree variant: collect into a slice first (same
		// loop shape), then fold from the right in a second pass.
		elemsVar := ctx.Gen("elems")
		locals = append(locals, elemsVar+" []"+gtypes.GoTypeRef(l.Elem.InferType()))
		locals = append(locals, resVar+" "+gtypes.GoTypeRef(t))
		code := templates.Render("list_code", listCodeEnv{
			OrigPos: posVar, CurPos: curPos, FinalPos: finalPos, ResultVar: elemsVar,
			ListGoType: "[]" + gtypes.GoTypeRef(l.Elem.InferType()),
			ElemCode:   elemEm.Code, ElemPos: elemEm.Pos, ElemResult: elemEm.Result,
			HasSep: hasSep, SepCode: sepEm.Code, SepPos: sepEm.Pos,
			EmptyValid: l.EmptyValid,
		})

		leftName := gtypes.FieldGoName(l.FoldNode.Schema.Fields[0].Name)
		rightName := gtypes.FieldGoName(l.FoldNode.Schema.Fields[1].Name)
		code += templates.Render("list_fold_code", listFoldCodeEnv{
			FinalPos: finalPos, ElemsVar: elemsVar, ResultVar: resVar,
			StructName: l.FoldNode.Name() + "Node", LeftField: leftName, RightField: rightName,
		})
		return resVar, finalPos, code, locals
	})
}

type listFoldCodeEnv struct {
	FinalPos   string
	ElemsVar   string
	ResultVar  string
	StructName string
	LeftField  string
	RightField string
}
