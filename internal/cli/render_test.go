package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const testBlockJSON = `{
	"id": "controls-repeat",
	"label": "repeat",
	"color": "#4a90d9",
	"has_previous": true,
	"has_next": true,
	"rows": [
		{"kind": "value", "field_width": 40, "field_height": 24},
		{"kind": "statement", "field_width": 20, "field_height": 24, "child_height": 48}
	]
}`

func writeTestBlock(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repeat.json")
	if err := os.WriteFile(path, []byte(testBlockJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRender(t *testing.T) {
	c := New(io.Discard, LogInfo)
	input := writeTestBlock(t)
	output := filepath.Join(t.TempDir(), "out.svg")

	opts := renderOpts{
		output:  output,
		formats: []string{formatSVG},
		padding: 4,
		noCache: true,
	}
	if err := c.runRender(t.Context(), input, &opts); err != nil {
		t.Fatalf("runRender error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte(`fill-rule="evenodd"`)) {
		t.Error("SVG output missing even-odd fill rule")
	}
}

func TestRunRenderMultipleFormats(t *testing.T) {
	c := New(io.Discard, LogInfo)
	input := writeTestBlock(t)
	base := filepath.Join(t.TempDir(), "out.svg")

	opts := renderOpts{
		output:  base,
		formats: []string{formatSVG, formatJSON, formatDOT},
		padding: 4,
		noCache: true,
	}
	if err := c.runRender(t.Context(), input, &opts); err != nil {
		t.Fatalf("runRender error: %v", err)
	}

	for _, ext := range []string{".svg", ".json", ".dot"} {
		path := filepath.Join(filepath.Dir(base), "out"+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing artifact %s: %v", path, err)
		}
	}
}

func TestRunRenderTreeSVG(t *testing.T) {
	c := New(io.Discard, LogInfo)
	input := writeTestBlock(t)
	output := filepath.Join(t.TempDir(), "out.tree.svg")

	opts := renderOpts{
		output:  output,
		formats: []string{formatTreeSVG},
		noCache: true,
	}
	if err := c.runRender(t.Context(), input, &opts); err != nil {
		t.Fatalf("runRender error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("tree-svg output is not an SVG document")
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	opts := renderOpts{formats: []string{formatSVG}, noCache: true}
	if err := c.runRender(t.Context(), filepath.Join(t.TempDir(), "nope.json"), &opts); err == nil {
		t.Error("expected error for missing input file")
	}
}
