package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
indent = "\t"
node_prefix = "v"
lenient = true
spool_threshold = 1024
label_attr = "name"
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Indent: "\t", NodePrefix: "v", Lenient: true, SpoolThreshold: 1024, LabelAttr: "name"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("optional missing config: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	if _, err := Load(path, true); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("required missing config error = %v, want INVALID_PATH", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `indent = `},
		{"unknown key", `colour = "red"`},
		{"bad prefix", `node_prefix = "n1"`},
		{"bad indent", `indent = "--"`},
		{"wrong type", `lenient = "yes"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := &Config{Indent: "    ", NodePrefix: "v", Lenient: true, SpoolThreshold: 10}
	opts := pipeline.Options{From: "gml", To: "graphml", KeepNaN: true}
	cfg.Apply(&opts)

	if opts.Indent != "    " || opts.NodePrefix != "v" || !opts.Lenient || opts.SpoolThreshold != 10 {
		t.Errorf("Apply() = %+v", opts)
	}
	if !opts.KeepNaN {
		t.Error("Apply() must not clear options set by the caller")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err := DefaultPath()
	if err != nil {
		t.Skipf("no config dir: %v", err)
	}
	if filepath.Base(path) != FileName || filepath.Base(filepath.Dir(path)) != AppDir {
		t.Errorf("DefaultPath() = %q", path)
	}
}
