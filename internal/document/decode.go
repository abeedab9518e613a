package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-richtext/internal/validation"
)

// ErrEmptyState is returned when the payload decodes but carries no root node.
var ErrEmptyState = errors.New("document: editor state has no root")

// stateNode mirrors the wire shape of a Lexical-style editor state node. Only
// the fields the exporter consumes are decoded; everything else is dropped.
type stateNode struct {
	Type     string      `json:"type"`
	Children []stateNode `json:"children,omitempty"`

	// Heading specific.
	Tag string `json:"tag,omitempty"`

	// Text specific. Format is an int bitmask on text nodes but editors also
	// reuse the key as an alignment string on element nodes, so it decodes
	// lazily.
	Text   string          `json:"text,omitempty"`
	Format json.RawMessage `json:"format,omitempty"`

	// List specific.
	ListType string `json:"listType,omitempty"`

	// Link specific.
	URL string `json:"url,omitempty"`
}

type stateEnvelope struct {
	Root *stateNode `json:"root"`
}

// Decode parses an editor-state JSON payload into a document tree. Node types
// outside the recognised set become KindOther so the exporter can skip them.
func Decode(state []byte) (*Tree, error) {
	var envelope stateEnvelope
	if err := json.Unmarshal(state, &envelope); err != nil {
		return nil, fmt.Errorf("document: decode editor state: %w", err)
	}
	if envelope.Root == nil {
		return nil, ErrEmptyState
	}
	return &Tree{Root: convert(envelope.Root)}, nil
}

// ValidateState checks the raw payload against the embedded editor-state
// schema before any decoding takes place.
func ValidateState(state []byte) error {
	var payload any
	if err := json.Unmarshal(state, &payload); err != nil {
		return fmt.Errorf("document: decode editor state: %w", err)
	}
	return validation.ValidateState(payload)
}

func convert(sn *stateNode) *Node {
	n := &Node{Kind: kindForType(sn.Type)}
	switch n.Kind {
	case KindHeading:
		n.Tag = strings.ToLower(strings.TrimSpace(sn.Tag))
	case KindText:
		n.Text = sn.Text
		n.Format = decodeFormat(sn.Format)
	case KindList:
		n.ListType = listTypeFor(sn.ListType)
	case KindLink:
		n.URL = sn.URL
	}
	for i := range sn.Children {
		n.Children = append(n.Children, convert(&sn.Children[i]))
	}
	return n
}

func kindForType(nodeType string) Kind {
	switch strings.ToLower(strings.TrimSpace(nodeType)) {
	case "heading":
		return KindHeading
	case "paragraph":
		return KindParagraph
	case "list":
		return KindList
	case "listitem":
		return KindListItem
	case "quote":
		return KindQuote
	case "text":
		return KindText
	case "linebreak":
		return KindLineBreak
	case "code":
		return KindCode
	case "link", "autolink":
		return KindLink
	default:
		return KindOther
	}
}

func listTypeFor(listType string) string {
	switch strings.ToLower(strings.TrimSpace(listType)) {
	case "number", ListTypeOrdered:
		return ListTypeOrdered
	default:
		return ListTypeUnordered
	}
}

// decodeFormat reads the Lexical format bitmask. Non-numeric values (e.g.
// alignment strings on element nodes) produce an empty flag set.
func decodeFormat(raw json.RawMessage) Format {
	if len(raw) == 0 {
		return 0
	}
	var bits int
	if err := json.Unmarshal(raw, &bits); err != nil {
		return 0
	}
	return Format(bits)
}
