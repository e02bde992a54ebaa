package templates

import "sort"

// Catalog is the authoritative mapping from template identifier to the file
// it produces in the project root. Output names are a static table, not
// derived from the template names; ".env" and "requirements.txt" exist
// precisely because a naming convention would get them wrong.
var Catalog = map[string]string{
	"env.tmpl":                ".env",
	"agent.py.tmpl":           "agent.py",
	"main.py.tmpl":            "main.py",
	"test.py.tmpl":            "test.py",
	"Dockerfile.tmpl":         "Dockerfile",
	"docker-compose.yml.tmpl": "docker-compose.yml",
	"Makefile.tmpl":           "Makefile",
	"pyproject.toml.tmpl":     "pyproject.toml",
	"requirements.txt.tmpl":   "requirements.txt",
	"README.md.tmpl":          "README.md",
}

// OutputName returns the project-relative file a template renders to.
func OutputName(template string) (string, bool) {
	out, ok := Catalog[template]
	return out, ok
}

// Names returns the catalog's template identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
