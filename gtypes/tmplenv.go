package gtypes

// The *Env types below are the "small, typed environment" spec.md §4.G
// asks template glue to receive: plain value structs with only the
// strings a template needs, built once per AddToContext call instead of
// handing a template direct access to a live Type (and, through it,
// whatever else that Type can reach). This mirrors the Python original's
// TemplateEnvironment, made static instead of duck-typed.

// FieldView is one rendered AST node field: its Go identifier, its Go
// type reference, and the presentation flags spec.md §3.2 says only the
// pretty-printer cares about.
type FieldView struct {
	Name           string
	GoName         string
	GoType         string
	Repr           bool
	KeywordRepr    bool
	SuppressIfNull bool
	Optional       bool
}

// NodeEnv is the template environment for astnode_type_decl/def/impl.
type NodeEnv struct {
	Name            string
	Abstract        bool
	BaseName        string
	IsRoot          bool
	OwnFields       []FieldView
	AllFields       []FieldView
	Ancestors       []string // every ancestor class name, nearest first, excluding ASTRoot
	ReprDisplayName string
}

func (a *ASTNodeType) env() NodeEnv {
	own := make([]FieldView, len(a.Schema.Fields))
	for i, f := range a.Schema.Fields {
		own[i] = fieldView(f)
	}
	all := make([]FieldView, 0)
	for _, f := range a.AllFields() {
		all = append(all, fieldView(f))
	}
	base := "ASTRoot"
	if a.Schema.Base != nil {
		base = a.Schema.Base.Name()
	}
	ancestors := make([]string, 0)
	for p := a.Schema.Base; p != nil && p != ASTRoot; p = p.Schema.Base {
		ancestors = append(ancestors, p.Name())
	}
	return NodeEnv{
		Name:            a.Name(),
		Abstract:        a.Schema.Abstract,
		BaseName:        base,
		IsRoot:          a == ASTRoot,
		OwnFields:       own,
		AllFields:       all,
		Ancestors:       ancestors,
		ReprDisplayName: a.ReprDisplayName(),
	}
}

func fieldView(f Field) FieldView {
	return FieldView{
		Name:           f.Name,
		GoName:         exportedIdent(f.Name),
		GoType:         GoTypeRef(f.Type),
		Repr:           f.Repr,
		KeywordRepr:    f.KeywordRepr,
		SuppressIfNull: f.SuppressIfNull,
		Optional:       f.Optional,
	}
}

// RowEnv is the template environment for row_type_decl/def/impl.
type RowEnv struct {
	Name   string
	Fields []FieldView
}

func (r *RowType) env() RowEnv {
	fields := make([]FieldView, len(r.Components))
	for i, c := range r.Components {
		fields[i] = FieldView{
			Name:   field0Name(i),
			GoName: field0Name(i),
			GoType: GoTypeRef(c),
		}
	}
	return RowEnv{Name: r.TypeName, Fields: fields}
}

func field0Name(i int) string {
	return "F" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

// ListEnv is the template environment for list_type.
type ListEnv struct {
	Name       string
	ElemGoType string
}

func (l *ListType) env() ListEnv {
	elemType := "interface{}"
	if l.Elem != nil {
		elemType = GoTypeRef(l.Elem)
	}
	return ListEnv{Name: l.Name(), ElemGoType: elemType}
}

// EnumAltView is one rendered enum alternative.
type EnumAltView struct {
	Const string
	Label string
}

// EnumEnv is the template environment for enum_type_decl/impl.
type EnumEnv struct {
	Name         string
	Suffix       string
	UninitConst  string
	Alternatives []EnumAltView
}

func (e *EnumType) env() EnumEnv {
	alts := make([]EnumAltView, len(e.Alternatives))
	for i, a := range e.Alternatives {
		alts[i] = EnumAltView{Const: e.GoConst(a), Label: a}
	}
	return EnumEnv{
		Name:         e.TypeName,
		Suffix:       e.Suffix,
		UninitConst:  e.NullExpr(),
		Alternatives: alts,
	}
}
