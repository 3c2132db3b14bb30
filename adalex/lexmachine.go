package adalex

import (
	"strings"

	"github.com/npillmayer/adapgen"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// newLexer builds a lexmachine.Lexer recognizing exactly the literals,
// keywords and classes adaschema.NewGrammar needs, assigning each match
// the TokType a parallel newRegistry() hands out.
//
// Patterns are added in the same order adapgen's teacher
// (lr/scanner/lexmach) adds them: free-form classes first, then
// punctuation literals, then keywords last — on an input that ties two
// patterns for longest match (a bare keyword spelling also satisfies the
// identifier class), lexmachine favors the pattern added last, so
// keywords have to come after the identifier class to win that tie.
func newLexer(r *registry) (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()

	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	lexer.Add([]byte(`\-\-[^\n]*`), skip) // Ada end-of-line comment

	lexer.Add([]byte(`"[^"]*"`), makeClassToken(r, adapgen.ClassString))
	lexer.Add([]byte(`[0-9]+(\_[0-9]+)*(\.[0-9]+(\_[0-9]+)*)?`), makeClassToken(r, adapgen.ClassNumber))
	lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeClassToken(r, adapgen.ClassIdentifier))

	for _, p := range punctuation {
		lexer.Add([]byte(escapeLiteral(p)), makeLiteralToken(r, p))
	}
	for _, kw := range keywords {
		var pat strings.Builder
		for _, c := range kw {
			pat.WriteString("[" + strings.ToLower(string(c)) + strings.ToUpper(string(c)) + "]")
		}
		lexer.Add([]byte(pat.String()), makeLiteralToken(r, kw))
	}

	if err := lexer.Compile(); err != nil {
		tracer().Errorf("compiling lexmachine DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// escapeLiteral turns a punctuation spelling into a lexmachine pattern
// matching it verbatim, escaping every rune so that multi-char operators
// like "=>" or ":=" don't get parsed as regex metacharacters.
func escapeLiteral(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeLiteralToken(r *registry, symbol string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		id := r.literals[symbol]
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

func makeClassToken(r *registry, class adapgen.TokenClassKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		id := r.classes[class]
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}
