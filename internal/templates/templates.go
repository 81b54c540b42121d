// Package templates loads and renders the theme templates, probing a
// user override directory before falling back to the embedded
// builtins.
package templates

import (
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"hadalized/pkg/errors"
)

//go:embed builtin/*
var builtinFS embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	},
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
}

// Template pairs a parsed template with its raw source bytes. The raw
// bytes participate in build fingerprints, so a template edit
// invalidates every output rendered from it.
type Template struct {
	name   string
	source []byte
	tmpl   *template.Template
}

// Name returns the template's file name.
func (t *Template) Name() string {
	return t.name
}

// Source returns the raw bytes the template was parsed from.
func (t *Template) Source() []byte {
	return t.source
}

// Render executes the template against a context. Unresolved
// references are errors rather than silent blanks.
func (t *Template) Render(ctx any) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, ctx); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func parse(name string, source []byte) (*Template, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcs).
		Parse(string(source))
	if err != nil {
		return nil, errors.NewParseError(name, err)
	}
	return &Template{name: name, source: source, tmpl: tmpl}, nil
}

// Loader resolves template names, checking the user directory first
// and the embedded bundle second. An empty user directory disables
// the override step.
type Loader struct {
	userDir string
}

// NewLoader returns a loader probing userDir before the builtins.
func NewLoader(userDir string) *Loader {
	return &Loader{userDir: userDir}
}

// Load resolves and parses a template by file name. A name that
// matches neither a user file nor a builtin fails with NotFoundError.
func (l *Loader) Load(name string) (*Template, error) {
	if l.userDir != "" {
		path := filepath.Join(l.userDir, name)
		if data, err := os.ReadFile(path); err == nil {
			return parse(name, data)
		}
	}

	data, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		return nil, errors.NewNotFoundError("template", name)
	}
	return parse(name, data)
}

// Builtins lists the embedded template names.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
