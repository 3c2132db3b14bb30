package adalex

import "github.com/npillmayer/adapgen"

// keywords lists every keyword literal adaschema.NewGrammar matches with
// comb.Tok. Each is scanned case-insensitively, matching Ada's own
// case-insensitive reserved words.
var keywords = []string{
	"with", "use", "type", "all", "package", "is", "end", "private",
	"overriding", "not", "in", "out", "aliased", "constant", "pragma",
	"limited",
}

// punctuation lists every punctuation literal adaschema.NewGrammar
// matches with comb.Tok.
var punctuation = []string{
	"(", ")", ",", ".", ":", ";", "=>", ":=",
}

// classes lists the token classes adaschema.NewGrammar matches with
// comb.TokClass. ClassLabel, ClassChar and ClassTermination are never
// matched by this grammar and are left unregistered: KindRegistry.Class
// correctly reports them as unresolvable rather than guessing an id.
var classes = []adapgen.TokenClassKind{
	adapgen.ClassIdentifier,
	adapgen.ClassNumber,
	adapgen.ClassString,
}

// registry is the adapgen.KindRegistry newRegistry builds and Tokenize
// hands to generated parser functions.
type registry struct {
	literals map[string]adapgen.TokType
	classes  map[adapgen.TokenClassKind]adapgen.TokType
}

var _ adapgen.KindRegistry = (*registry)(nil)

func (r *registry) Literal(symbol string) (adapgen.TokType, bool) {
	t, ok := r.literals[symbol]
	return t, ok
}

func (r *registry) Class(class adapgen.TokenClassKind) (adapgen.TokType, bool) {
	t, ok := r.classes[class]
	return t, ok
}

// newRegistry assigns a dense TokType id to every keyword, punctuation
// literal and token class, in that order. The lexmachine lexer built by
// newLexer tags its matches with these same ids, because every action it
// installs looks its id up in this registry.
func newRegistry() *registry {
	r := &registry{
		literals: make(map[string]adapgen.TokType, len(keywords)+len(punctuation)),
		classes:  make(map[adapgen.TokenClassKind]adapgen.TokType, len(classes)),
	}
	id := 0
	for _, kw := range keywords {
		r.literals[kw] = adapgen.TokType(id)
		id++
	}
	for _, p := range punctuation {
		r.literals[p] = adapgen.TokType(id)
		id++
	}
	for _, c := range classes {
		r.classes[c] = adapgen.TokType(id)
		id++
	}
	return r
}
