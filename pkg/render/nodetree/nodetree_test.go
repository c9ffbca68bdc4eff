package nodetree

import (
	"strings"
	"testing"

	"github.com/snapblocks/snapblocks/pkg/block"
)

func treeDef() *block.Def {
	return &block.Def{
		ID:          "controls-repeat",
		HasPrevious: true,
		Rows: []*block.Row{
			{Kind: block.KindValue, MinFieldWidth: 40, FieldHeight: 24},
			{Kind: block.KindStatement, MinFieldWidth: 20, FieldHeight: 24, MinChildHeight: 48},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(treeDef(), Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("DOT output should start with digraph declaration")
	}
	if !strings.Contains(dot, `"controls-repeat"`) {
		t.Error("DOT output missing block node")
	}
	for _, want := range []string{`"row0"`, `"row1"`, `"controls-repeat" -> "row0";`, `"controls-repeat" -> "row1";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %s", want)
		}
	}
	// Statement rows are visually distinguished.
	if !strings.Contains(dot, "dashed") {
		t.Error("statement row should be rendered dashed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	plain := ToDOT(treeDef(), Options{})
	detailed := ToDOT(treeDef(), Options{Detailed: true})

	if strings.Contains(plain, "fields:") {
		t.Error("plain labels should not include dimensions")
	}
	if !strings.Contains(detailed, "fields: 40x24") {
		t.Error("detailed labels should include field dimensions")
	}
	if !strings.Contains(detailed, "mode: external") {
		t.Error("detailed root label should include the layout mode")
	}
}

func TestToDOTAnonymousBlock(t *testing.T) {
	def := treeDef()
	def.ID = ""
	dot := ToDOT(def, Options{})
	if !strings.Contains(dot, `"block"`) {
		t.Error("anonymous definitions should fall back to a generic root id")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	if ToDOT(treeDef(), Options{Detailed: true}) != ToDOT(treeDef(), Options{Detailed: true}) {
		t.Error("repeated DOT generation diverged")
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(treeDef(), Options{Detailed: true})
	svg, err := RenderSVG(t.Context(), dot)
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not an SVG document")
	}
	if !strings.Contains(string(svg), "controls-repeat") {
		t.Error("SVG output missing the block node")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(t.Context(), "digraph {"); err == nil {
		t.Error("expected error for truncated DOT source")
	}
}
