package adalex

import "testing"

func TestTokenizeRecognizesKeywordsAndIdentifiers(t *testing.T) {
	toks, kinds, err := Tokenize("with Ada.Text_IO;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks.Len() != 5 {
		t.Fatalf("expected 5 tokens (with, Ada, ., Text_IO, ;), got %d", toks.Len())
	}
	withKind, ok := kinds.Literal("with")
	if !ok {
		t.Fatalf("expected the registry to resolve the with keyword")
	}
	if toks.KindAt(0) != withKind {
		t.Errorf("expected the first token to be the with keyword")
	}
	idKind, ok := kinds.Class(0) // adapgen.ClassIdentifier
	if !ok {
		t.Fatalf("expected the registry to resolve the identifier class")
	}
	if toks.KindAt(1) != idKind {
		t.Errorf("expected the second token to be an identifier, got kind %v", toks.KindAt(1))
	}
	if toks.TextAt(1) != "Ada" {
		t.Errorf("expected the second token's text to be %q, got %q", "Ada", toks.TextAt(1))
	}
}

func TestTokenizeDistinguishesKeywordFromIdentifierPrefix(t *testing.T) {
	toks, kinds, err := Tokenize("package packaging")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", toks.Len())
	}
	pkgKind, _ := kinds.Literal("package")
	idKind, _ := kinds.Class(0)
	if toks.KindAt(0) != pkgKind {
		t.Errorf("expected the bare keyword spelling to lex as the keyword, not an identifier")
	}
	if toks.KindAt(1) != idKind || toks.TextAt(1) != "packaging" {
		t.Errorf("expected the longer identifier to win over the keyword prefix, got kind %v text %q", toks.KindAt(1), toks.TextAt(1))
	}
}

func TestTokenizeSkipsWhitespaceAndComments(t *testing.T) {
	toks, _, err := Tokenize("with  -- a comment\n Ada;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks.Len() != 3 {
		t.Fatalf("expected 3 tokens (with, Ada, ;), got %d", toks.Len())
	}
}
