package scaffold

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/agentverse/create-agentverse-agent/pkg/agentcfg"
	"github.com/agentverse/create-agentverse-agent/pkg/templates"
)

func newTestScaffolder(t *testing.T) *Scaffolder {
	t.Helper()
	engine, err := templates.NewEmbeddedEngine()
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return New(engine, WithOutput(io.Discard))
}

func newTestConfig(t *testing.T, root string, opts ...agentcfg.Option) *agentcfg.Config {
	t.Helper()
	base := []agentcfg.Option{
		agentcfg.WithAgentName("Demo Agent"),
		agentcfg.WithAgentPort(1234),
		agentcfg.WithHostingAddress("example.com"),
		agentcfg.WithHostingPort(8080),
		agentcfg.WithRoot(root),
	}
	cfg, err := agentcfg.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("building config: %v", err)
	}
	return cfg
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names
}

func TestCreateProject(t *testing.T) {
	root := t.TempDir()
	s := newTestScaffolder(t)
	cfg := newTestConfig(t, root)

	path, err := s.CreateProject(cfg, false)
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	wantPath, _ := filepath.Abs(filepath.Join(root, "demo-agent"))
	if path != wantPath {
		t.Errorf("CreateProject() = %q, want %q", path, wantPath)
	}

	got := listDir(t, path)
	want := []string{
		".env", "Dockerfile", "Makefile", "README.md", "agent.py",
		"docker-compose.yml", "main.py", "pyproject.toml", "requirements.txt",
		"test.py",
	}
	if len(got) != len(want) {
		t.Fatalf("project has files %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("project file %d = %q, want %q", i, got[i], want[i])
		}
	}

	env, err := os.ReadFile(filepath.Join(path, ".env"))
	if err != nil {
		t.Fatalf("reading .env: %v", err)
	}
	for _, line := range []string{
		`AGENT_PORT="1234"`,
		`HOSTING_ENDPOINT="http://example.com:8080"`,
		`ENV="development"`,
	} {
		if !strings.Contains(string(env), line) {
			t.Errorf(".env missing %s\ngot:\n%s", line, env)
		}
	}
}

func TestCreateProjectExistingWithoutOverwrite(t *testing.T) {
	root := t.TempDir()
	s := newTestScaffolder(t)
	cfg := newTestConfig(t, root)

	target := filepath.Join(root, "demo-agent")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "custom.txt"), []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	before := listDir(t, target)

	_, err := s.CreateProject(cfg, false)
	if err == nil {
		t.Fatal("CreateProject() succeeded on an existing directory")
	}

	var exists *ExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("CreateProject() error = %T (%v), want *ExistsError", err, err)
	}
	if !strings.Contains(exists.Path, "demo-agent") {
		t.Errorf("ExistsError.Path = %q, want it to name the target", exists.Path)
	}

	after := listDir(t, target)
	if len(before) != len(after) || before[0] != after[0] {
		t.Errorf("directory mutated by failed call: before %v, after %v", before, after)
	}

	content, err := os.ReadFile(filepath.Join(target, "custom.txt"))
	if err != nil || string(content) != "precious" {
		t.Errorf("custom.txt = %q, %v; want untouched", content, err)
	}
}

func TestCreateProjectOverwrite(t *testing.T) {
	root := t.TempDir()
	s := newTestScaffolder(t)
	cfg := newTestConfig(t, root)

	target := filepath.Join(root, "demo-agent")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "custom.txt"), []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, ".env"), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	path, err := s.CreateProject(cfg, true)
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	// Catalog files are replaced.
	env, err := os.ReadFile(filepath.Join(path, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if string(env) == "stale" {
		t.Error(".env was not overwritten")
	}

	// Unrelated files survive with their content.
	content, err := os.ReadFile(filepath.Join(path, "custom.txt"))
	if err != nil || string(content) != "precious" {
		t.Errorf("custom.txt = %q, %v; want untouched", content, err)
	}

	if got := len(listDir(t, path)); got != len(templates.Catalog)+1 {
		t.Errorf("project has %d files, want %d catalog files plus custom.txt", got, len(templates.Catalog))
	}
}

func TestCreateProjectRevalidatesConfig(t *testing.T) {
	root := t.TempDir()
	s := newTestScaffolder(t)
	cfg := newTestConfig(t, root)

	// Mutated into an invalid state after construction; CreateProject is
	// the consumption point that must catch it.
	cfg.HostingPort = cfg.AgentPort

	_, err := s.CreateProject(cfg, false)
	var conflict *agentcfg.PortConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("CreateProject() error = %T (%v), want *PortConflictError", err, err)
	}

	if _, statErr := os.Stat(filepath.Join(root, "demo-agent")); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("invalid config still created the project directory")
	}
}

type fakeRenderer struct {
	names []string
	fail  map[string]error
}

func (f *fakeRenderer) Render(name string, _ map[string]any) (string, error) {
	if err := f.fail[name]; err != nil {
		return "", err
	}
	return "content of " + name + "\n", nil
}

func (f *fakeRenderer) List() []string {
	return f.names
}

func TestCreateProjectOneFilePerCatalogEntry(t *testing.T) {
	root := t.TempDir()
	r := &fakeRenderer{names: []string{"env.tmpl", "README.md.tmpl"}}
	s := New(r, WithQuiet(true))
	cfg := newTestConfig(t, root)

	path, err := s.CreateProject(cfg, false)
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	got := listDir(t, path)
	want := []string{".env", "README.md"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("project files = %v, want %v", got, want)
	}

	env, err := os.ReadFile(filepath.Join(path, ".env"))
	if err != nil || string(env) != "content of env.tmpl\n" {
		t.Errorf(".env = %q, %v; want rendered output", env, err)
	}
}

func TestCreateProjectUnmappedTemplateName(t *testing.T) {
	root := t.TempDir()
	r := &fakeRenderer{names: []string{"mystery.tmpl"}}
	s := New(r, WithQuiet(true))
	cfg := newTestConfig(t, root)

	_, err := s.CreateProject(cfg, false)

	var rerr *templates.RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("CreateProject() error = %T (%v), want *RenderError", err, err)
	}
	if rerr.Template != "mystery.tmpl" {
		t.Errorf("RenderError.Template = %q, want mystery.tmpl", rerr.Template)
	}
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Error("error does not wrap ErrTemplateNotFound")
	}
}

func TestCreateProjectRenderFailurePropagates(t *testing.T) {
	root := t.TempDir()
	rerr := &templates.RenderError{Template: "env.tmpl", Err: errors.New("boom")}
	r := &fakeRenderer{
		names: []string{"env.tmpl"},
		fail:  map[string]error{"env.tmpl": rerr},
	}
	s := New(r, WithQuiet(true))
	cfg := newTestConfig(t, root)

	_, err := s.CreateProject(cfg, false)

	var got *templates.RenderError
	if !errors.As(err, &got) {
		t.Fatalf("CreateProject() error = %T (%v), want *RenderError", err, err)
	}
	if got.Template != "env.tmpl" {
		t.Errorf("RenderError.Template = %q, want env.tmpl", got.Template)
	}
}

func TestCreateProjectProgressOutput(t *testing.T) {
	root := t.TempDir()
	var buf strings.Builder
	r := &fakeRenderer{names: []string{"env.tmpl"}}
	s := New(r, WithOutput(&buf))
	cfg := newTestConfig(t, root)

	if _, err := s.CreateProject(cfg, false); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if !strings.Contains(buf.String(), ".env") {
		t.Errorf("progress output = %q, want it to mention .env", buf.String())
	}
}
