package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateWritesExpectedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := generate("parser", "package_decl", dir, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"parser.go", "parser_impl.go", "main.go"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("expected %s to be non-empty", name)
		}
	}
	header, err := os.ReadFile(filepath.Join(dir, "parser.go"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(header), "package parser") {
		t.Errorf("expected parser.go to declare package parser, got:\n%s", header)
	}
}

func TestGenerateWithoutDriverOmitsMainGo(t *testing.T) {
	dir := t.TempDir()
	if err := generate("parser", "package_decl", dir, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "main.go")); !os.IsNotExist(err) {
		t.Errorf("expected main.go to be absent without -driver")
	}
}
