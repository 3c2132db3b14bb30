package adaschema

import "github.com/npillmayer/adapgen/gtypes"

// Overriding is the overriding_indicator enum (spec.md §8 scenario 3).
var Overriding = gtypes.NewEnum("Overriding",
	[]string{"overriding", "not_overriding", "unspecified"}, "kind")

// InOut is the parameter-mode enum a parameter_profile's mode field takes
// (spec.md §8 scenario 4: "mode = inout").
var InOut = gtypes.NewEnum("InOut", []string{"in", "out", "inout"}, "way")
