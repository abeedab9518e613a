package document

import (
	"errors"
	"testing"

	"github.com/goliatone/go-richtext/internal/validation"
)

const sampleState = `{
	"root": {
		"type": "root",
		"children": [
			{
				"type": "heading",
				"tag": "h1",
				"children": [{"type": "text", "text": "Welcome", "format": 0}]
			},
			{
				"type": "paragraph",
				"format": "left",
				"children": [
					{"type": "text", "text": "Bold", "format": 1},
					{"type": "linebreak"},
					{"type": "link", "url": "https://example.com", "children": [
						{"type": "text", "text": "site", "format": 0}
					]}
				]
			},
			{
				"type": "list",
				"listType": "number",
				"children": [
					{"type": "listitem", "children": [{"type": "text", "text": "one"}]}
				]
			},
			{"type": "horizontalrule"}
		]
	}
}`

func TestDecode(t *testing.T) {
	tree, err := Decode([]byte(sampleState))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	root := tree.Root
	if root.Kind != KindOther {
		t.Fatalf("root kind = %s, want other", root.Kind)
	}
	if len(root.Children) != 4 {
		t.Fatalf("expected 4 top-level blocks, got %d", len(root.Children))
	}

	heading := root.Children[0]
	if heading.Kind != KindHeading || heading.Tag != HeadingTagH1 {
		t.Fatalf("heading decoded as %s/%s", heading.Kind, heading.Tag)
	}

	para := root.Children[1]
	if para.Kind != KindParagraph {
		t.Fatalf("paragraph decoded as %s", para.Kind)
	}
	if bold := para.Children[0]; !bold.Format.Has(FormatBold) {
		t.Fatalf("expected bold flag on text run, got %b", bold.Format)
	}
	if link := para.Children[2]; link.Kind != KindLink || link.URL != "https://example.com" {
		t.Fatalf("link decoded as %s url=%q", link.Kind, link.URL)
	}

	list := root.Children[2]
	if list.Kind != KindList || list.ListType != ListTypeOrdered {
		t.Fatalf("numbered list decoded as %s/%s", list.Kind, list.ListType)
	}

	if unknown := root.Children[3]; unknown.Kind != KindOther {
		t.Fatalf("unknown node type should decode as other, got %s", unknown.Kind)
	}
}

func TestDecode_AlignmentFormatIgnored(t *testing.T) {
	tree, err := Decode([]byte(sampleState))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// The paragraph reuses "format" as an alignment string; it must not leak
	// into text formatting.
	if para := tree.Root.Children[1]; para.Format != 0 {
		t.Fatalf("element format should stay empty, got %b", para.Format)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode([]byte(`{`)); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
	if _, err := Decode([]byte(`{}`)); !errors.Is(err, ErrEmptyState) {
		t.Fatalf("expected ErrEmptyState, got %v", err)
	}
}

func TestValidateState(t *testing.T) {
	if err := ValidateState([]byte(sampleState)); err != nil {
		t.Fatalf("valid state rejected: %v", err)
	}

	err := ValidateState([]byte(`{"root": {"children": []}}`))
	if err == nil {
		t.Fatalf("expected schema failure for node without type")
	}
	if !errors.Is(err, validation.ErrStateInvalid) {
		t.Fatalf("expected ErrStateInvalid, got %v", err)
	}
	if issues := validation.Issues(err); len(issues) == 0 {
		t.Fatalf("expected at least one validation issue")
	}
}

func TestTitle(t *testing.T) {
	tree, err := Decode([]byte(sampleState))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if title := tree.Title(); title != "Welcome" {
		t.Fatalf("Title = %q, want %q", title, "Welcome")
	}

	untitled := NewTree(Paragraph(Text("no heading here", 0)))
	if title := untitled.Title(); title != "" {
		t.Fatalf("expected empty title, got %q", title)
	}
}
