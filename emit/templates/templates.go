package templates

import (
	"embed"
	"strings"
	"sync"
	"text/template"
)

//go:embed tmpl/*.tmpl
var templateFS embed.FS

var (
	loadOnce  sync.Once
	templates *template.Template
	loadErr   error
)

func funcs() template.FuncMap {
	return template.FuncMap{
		"indent": indent,
		"quote":  quoteGo,
	}
}

func load() {
	templates, loadErr = template.New("root").Funcs(funcs()).ParseFS(templateFS, "tmpl/*.tmpl")
	if loadErr != nil {
		tracer().Errorf("failed to parse templates: %v", loadErr)
	}
}

// Render renders the named template (e.g. "row_code", "astnode_type_decl")
// against env and returns the resulting string. It panics if the template
// set failed to parse (a build-time programming error, not a grammar
// error) or if the named template does not exist.
func Render(name string, env interface{}) string {
	loadOnce.Do(load)
	if loadErr != nil {
		panic(loadErr)
	}
	var sb strings.Builder
	t := templates.Lookup(name + ".tmpl")
	if t == nil {
		panic("templates: no such template: " + name)
	}
	if err := t.Execute(&sb, env); err != nil {
		panic(err)
	}
	return sb.String()
}

// Indent re-indents every non-empty line of s by level tabs. Exported
// so callers assembling a function body out of several rendered fragments
// can re-indent them uniformly, the way compiled_native's indent() did
// for the Python original's emitted C++.
func Indent(s string, level int) string {
	return indent(s, level)
}

func indent(s string, level int) string {
	pad := strings.Repeat("\t", level)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func quoteGo(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
