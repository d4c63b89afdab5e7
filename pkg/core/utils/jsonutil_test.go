package utils

import (
	"strings"
	"testing"
)

type probe struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestTolerantUnmarshalStrict(t *testing.T) {
	var p probe
	if err := TolerantUnmarshal([]byte(`{"name":"wine","count":3}`), &p); err != nil {
		t.Fatalf("strict JSON rejected: %v", err)
	}
	if p.Name != "wine" || p.Count != 3 {
		t.Errorf("decoded %+v", p)
	}
}

func TestTolerantUnmarshalTrailingComma(t *testing.T) {
	var p probe
	if err := TolerantUnmarshal([]byte(`{"name":"wine","count":3,}`), &p); err != nil {
		t.Fatalf("repairable JSON rejected: %v", err)
	}
	if p.Name != "wine" || p.Count != 3 {
		t.Errorf("decoded %+v", p)
	}
}

func TestTolerantUnmarshalCommented(t *testing.T) {
	src := `{
		// edited 2026-01 after the December revision
		name: "wine"
		count: 3
	}`
	var p probe
	if err := TolerantUnmarshal([]byte(src), &p); err != nil {
		t.Fatalf("hjson input rejected: %v", err)
	}
	if p.Name != "wine" || p.Count != 3 {
		t.Errorf("decoded %+v", p)
	}
}

func TestTolerantUnmarshalGarbage(t *testing.T) {
	var p probe
	err := TolerantUnmarshal([]byte("<html>not json</html>"), &p)
	if err == nil {
		t.Fatal("expected error for non-JSON input")
	}
}

func TestMarkdownToHTMLRendersTables(t *testing.T) {
	md := "# Run\n\n| Document | Sales |\n| --- | --- |\n| dec.json | 8 |\n"
	html, err := MarkdownToHTML(md)
	if err != nil {
		t.Fatalf("MarkdownToHTML: %v", err)
	}
	for _, want := range []string{"<h1>", "<table>", "dec.json"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}
}
