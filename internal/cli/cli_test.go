package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "archviz" {
		t.Errorf("root.Use = %q", root.Use)
	}

	want := map[string]bool{"generate": false, "render": false, "completion": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestLoadJobNameFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample-flow.toml")
	content := `
kind = "roleflow"
[roleflow]
role = "Reviewer"
process = "Review"
actors = ["Reviewer"]
actions = ["Open"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	job, err := loadJob(path)
	if err != nil {
		t.Fatalf("loadJob error: %v", err)
	}
	if job.Name != "sample-flow" {
		t.Errorf("job name = %q, want %q", job.Name, "sample-flow")
	}
	if job.Diagram == nil || job.Diagram.Title != "Reviewer Data Flow" {
		t.Errorf("diagram not built from spec: %+v", job.Diagram)
	}
}

func TestLoadJobRejectsBadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte(`kind = "mosaic"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadJob(path); err == nil {
		t.Error("loadJob accepted an unknown spec kind")
	}
}
