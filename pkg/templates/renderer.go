// Package templates renders the fixed catalog of project templates against a
// configuration dump.
package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Renderer renders one named template from a fixed catalog against a
// key/value context.
type Renderer interface {
	Render(name string, ctx map[string]any) (string, error)
	List() []string
}

// ErrTemplateNotFound is wrapped by RenderError when the requested template
// is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found")

// RenderError wraps every engine-level failure (unknown template, parse or
// execution error, missing context key) so callers never see text/template
// internals directly.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering template %q: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Engine is a Renderer backed by text/template. Templates are parsed once at
// construction with missingkey=error, so a template referencing a context
// key the dump doesn't provide fails loudly instead of emitting "<no value>".
type Engine struct {
	templates map[string]*template.Template
}

// NewEngine parses every catalog template found under dir in fsys.
func NewEngine(fsys fs.FS, dir string) (*Engine, error) {
	e := &Engine{templates: make(map[string]*template.Template, len(Catalog))}

	for name := range Catalog {
		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading template %s: %w", name, err)
		}

		tmpl, err := template.New(name).
			Option("missingkey=error").
			Funcs(sprig.FuncMap()).
			Parse(string(raw))
		if err != nil {
			return nil, &RenderError{Template: name, Err: err}
		}

		e.templates[name] = tmpl
	}

	return e, nil
}

func (e *Engine) Render(name string, ctx map[string]any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", &RenderError{Template: name, Err: ErrTemplateNotFound}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", &RenderError{Template: name, Err: err}
	}

	return buf.String(), nil
}

func (e *Engine) List() []string {
	return Names()
}
