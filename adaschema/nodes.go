package adaschema

import "github.com/npillmayer/adapgen/gtypes"

// Name is a (possibly dotted) reference such as "A" or "B.C": a list of
// identifier tokens joined by ".".
var Name = gtypes.DefineNode("Name", nil, false, gtypes.F("parts"))

// UseDecl is the common base of the two use-clause variants (spec.md §8
// scenario 2 exercises the Alternation over both).
var UseDecl = gtypes.DefineNode("UseDecl", nil, true)

var UsePkgDecl = gtypes.DefineNode("UsePkgDecl", UseDecl, false, gtypes.F("packages"))

var UseTypDecl = gtypes.DefineNode("UseTypDecl", UseDecl, false,
	gtypes.F("all"), gtypes.F("types"))

// WithDecl is a context-clause with_decl (spec.md §8 scenario 1).
var WithDecl = gtypes.DefineNode("WithDecl", nil, false,
	gtypes.F("is_limited"), gtypes.F("is_private"), gtypes.F("packages"))

// AspectAssoc is one "id => expr" (or bare "id") association inside an
// aspect_specification.
var AspectAssoc = gtypes.DefineNode("AspectAssoc", nil, false,
	gtypes.F("id"), gtypes.F("expr"))

// AspectSpecification is the optional "with X => Y, ..." clause several
// declarations carry.
var AspectSpecification = gtypes.DefineNode("AspectSpecification", nil, false,
	gtypes.F("assocs"))

// ObjectDecl is a plain object declaration, e.g. "X : Integer" or
// "Y : aliased constant Boolean := True".
var ObjectDecl = gtypes.DefineNode("ObjectDecl", nil, false,
	gtypes.F("ids"), gtypes.F("is_aliased"), gtypes.F("is_constant"),
	gtypes.F("type_expr"), gtypes.F("default_expr"), gtypes.F("aspects"))

// NumberDecl is a named-number declaration, e.g. "Pi : constant := 3".
var NumberDecl = gtypes.DefineNode("NumberDecl", nil, false,
	gtypes.F("ids"), gtypes.F("expr"))

// ParameterProfile is one subprogram/entry formal parameter group
// (spec.md §8 scenario 4).
var ParameterProfile = gtypes.DefineNode("ParameterProfile", nil, false,
	gtypes.F("ids"), gtypes.F("is_aliased"), gtypes.F("mode"),
	gtypes.F("type_expr"), gtypes.F("default"))

// Pragma is a pragma application, e.g. "pragma Inline (Foo);".
var Pragma = gtypes.DefineNode("Pragma", nil, false,
	gtypes.F("id"), gtypes.F("args"))

// PragmaArgument is one (optionally named) pragma argument.
var PragmaArgument = gtypes.DefineNode("PragmaArgument", nil, false,
	gtypes.F("id"), gtypes.F("expr"))

// PackageDecl is a package declaration with an optional private part
// (spec.md §8 scenario 5).
var PackageDecl = gtypes.DefineNode("PackageDecl", nil, false,
	gtypes.F("name"), gtypes.F("aspects"), gtypes.F("decls"),
	gtypes.F("private_decls"), gtypes.F("end_id"))
