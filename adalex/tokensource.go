package adalex

import (
	"github.com/npillmayer/adapgen"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tokenSlice is the indexed, read-only adapgen.TokenSource the generated
// parser functions expect (spec.md §3.4): the whole input is scanned up
// front, once, and kept around so that every accessor is O(1) and
// generated code can re-read a position as often as it likes without
// re-driving the scanner.
type tokenSlice struct {
	kinds []adapgen.TokType
	texts []string
	spans []adapgen.Span
}

var _ adapgen.TokenSource = (*tokenSlice)(nil)

func (ts *tokenSlice) Len() int                     { return len(ts.kinds) }
func (ts *tokenSlice) KindAt(i int) adapgen.TokType  { return ts.kinds[i] }
func (ts *tokenSlice) TextAt(i int) string           { return ts.texts[i] }
func (ts *tokenSlice) LocationAt(i int) adapgen.Span { return ts.spans[i] }

// Tokenize scans input in full and returns the adapgen.TokenSource and
// adapgen.KindRegistry a generated parser's entry-point function needs.
// It is what the generated driver templates (main_body.tmpl,
// interactive_main.tmpl) call.
func Tokenize(input string) (adapgen.TokenSource, adapgen.KindRegistry, error) {
	r := newRegistry()
	lexer, err := newLexer(r)
	if err != nil {
		return nil, nil, err
	}
	scan, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, nil, err
	}
	ts := &tokenSlice{}
	for {
		tok, err, eof := scan.Next()
		for err != nil {
			tracer().Errorf("scanner error: %v", err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				scan.TC = ui.FailTC
			}
			tok, err, eof = scan.Next()
		}
		if eof {
			break
		}
		t := tok.(*lexmachine.Token)
		ts.kinds = append(ts.kinds, adapgen.TokType(t.Type))
		ts.texts = append(ts.texts, string(t.Lexeme))
		ts.spans = append(ts.spans, adapgen.Span{uint64(t.StartColumn), uint64(t.EndColumn)})
	}
	return ts, r, nil
}
