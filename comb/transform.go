package comb

import (
	"github.com/npillmayer/adapgen/codegen"
	"github.com/npillmayer/adapgen/emit/templates"
	"github.com/npillmayer/adapgen/gtypes"
)

// Transform parses the wrapped sequence, then constructs an instance of
// Node whose fields are filled from the sequence's non-discarded
// components, in order (spec.md §4.C Transform). It registers Node with
// the context.
type Transform struct {
	base
	Seq  *Sequence
	Node *gtypes.ASTNodeType
}

// TransformTo builds a Transform of seq into node.
func TransformTo(seq *Sequence, node *gtypes.ASTNodeType) *Transform {
	return &Transform{Seq: seq, Node: node}
}

func (t *Transform) InferType() gtypes.Type {
	return t.memoType(func() gtypes.Type { return t.Node })
}

func (t *Transform) NeedsRefcount() bool { return true }

type transformFieldEnv struct {
	GoName string
	Value  string
}

type transformCodeEnv struct {
	FinalPos   string
	ResultVar  string
	StructName string
	Fields     []transformFieldEnv
}

func (t *Transform) Emit(ctx *codegen.Context, pos string) Emission {
	resolve(t)
	return t.emitOrCall(ctx, pos, t, "xform", false, func(ctx *codegen.Context, posVar string) (string, string, string, []string) {
		finalPos, resultVars, code, locals := emitChain(ctx, posVar, t.Seq.children)

		// Registers Node (and its ancestors) with ctx, inferring own
		// field types from the sequence's kept component types (spec.md
		// §4.B field-type resolution).
		t.Node.AddToContext(ctx, t.Seq)

		var kept []string
		for i, r := range resultVars {
			if !t.Seq.discard[i] {
				kept = append(kept, r)
			}
		}

		resVar := ctx.Gen("node")
		locals = append(locals, resVar+" "+gtypes.GoTypeRef(t.Node))

		allFields := t.Node.AllFields()
		n := len(allFields)
		bound := kept
		if n > 0 && len(kept) >= n {
			bound = kept[len(kept)-n:]
		}

		env := transformCodeEnv{FinalPos: finalPos, ResultVar: resVar, StructName: t.Node.Name() + "Node"}
		for i, fld := range allFields {
			v := t.Node.NullExpr()
			if i < len(bound) {
				v = bound[i]
			}
			env.Fields = append(env.Fields, transformFieldEnv{GoName: gtypes.FieldGoName(fld.Name), Value: v})
		}
		code += templates.Render("transform_code", env)
		return resVar, finalPos, code, locals
	})
}
