// Package scaffold materializes a validated configuration into a project
// directory, one output file per catalog template.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentverse/create-agentverse-agent/pkg/agentcfg"
	"github.com/agentverse/create-agentverse-agent/pkg/templates"
)

// Scaffolder writes one project from one config. It holds no state across
// invocations beyond its renderer and output options.
type Scaffolder struct {
	renderer templates.Renderer
	options  *options
}

func New(renderer templates.Renderer, opts ...Option) *Scaffolder {
	return &Scaffolder{
		renderer: renderer,
		options:  defaultOptions().apply(opts...),
	}
}

// CreateProject creates the project directory for cfg and writes every
// catalog template's output into it. The config is validated again here:
// fields are settable after construction, and this is the point where an
// invalid state must be caught.
//
// When the target directory already exists and overwrite is false the call
// fails with *ExistsError before touching the filesystem. With overwrite,
// only files named by the catalog are replaced; unrelated files survive.
// There is no rollback: if writing file k fails, files 1..k-1 stay written.
func (s *Scaffolder) CreateProject(cfg *agentcfg.Config, overwrite bool) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	target, err := filepath.Abs(cfg.ProjectPath())
	if err != nil {
		return "", &IOError{Op: "resolve", Path: cfg.ProjectPath(), Err: err}
	}

	if _, err := os.Stat(target); err == nil {
		if !overwrite {
			return "", &ExistsError{Path: target}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", &IOError{Op: "stat", Path: target, Err: err}
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return "", &IOError{Op: "mkdir", Path: target, Err: err}
	}

	context := cfg.Dump()

	for _, name := range s.renderer.List() {
		output, ok := templates.OutputName(name)
		if !ok {
			return "", &templates.RenderError{Template: name, Err: templates.ErrTemplateNotFound}
		}

		content, err := s.renderer.Render(name, context)
		if err != nil {
			return "", err
		}

		dest := filepath.Join(target, output)
		if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
			return "", &IOError{Op: "write", Path: dest, Err: err}
		}

		s.logf("  ✓ Created %s\n", output)
	}

	return target, nil
}

func (s *Scaffolder) logf(format string, args ...any) {
	if !s.options.quiet {
		fmt.Fprintf(s.options.output, format, args...)
	}
}
