package templates

import "embed"

//go:embed templates
var embedded embed.FS

// NewEmbeddedEngine builds an Engine over the compiled-in template set.
func NewEmbeddedEngine() (*Engine, error) {
	return NewEngine(embedded, "templates")
}
