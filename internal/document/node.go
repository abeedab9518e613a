package document

// Kind discriminates the node variants understood by the Markdown exporter.
// The set is closed: payload node types outside it decode as KindOther, which
// every consumer treats as an explicit no-op rather than an error.
type Kind int

const (
	KindOther Kind = iota
	KindHeading
	KindParagraph
	KindList
	KindListItem
	KindQuote
	KindText
	KindLineBreak
	KindCode
	KindLink
)

// String renders the kind label used in logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindListItem:
		return "listitem"
	case KindQuote:
		return "quote"
	case KindText:
		return "text"
	case KindLineBreak:
		return "linebreak"
	case KindCode:
		return "code"
	case KindLink:
		return "link"
	default:
		return "other"
	}
}

// Format is the set of inline text styles active on a text run. The bit
// values follow the Lexical editor encoding so real editor payloads carry
// over without translation.
type Format int

const (
	FormatBold          Format = 1
	FormatItalic        Format = 1 << 1
	FormatStrikethrough Format = 1 << 2
	FormatCode          Format = 1 << 4
)

// Has reports whether the given style flag is active.
func (f Format) Has(flag Format) bool {
	return f&flag != 0
}

// Heading tags recognised by the exporter. Deeper levels are preserved on
// the node but produce no Markdown marker.
const (
	HeadingTagH1 = "h1"
	HeadingTagH2 = "h2"
)

// List ordering tags.
const (
	ListTypeOrdered   = "ordered"
	ListTypeUnordered = "unordered"
)

// Node is one vertex in the document tree. It is a tagged union: Kind
// selects the variant and only that variant's fields carry meaning. The
// exporter reads nodes strictly through these fields and never mutates them.
type Node struct {
	Kind     Kind
	Children []*Node

	// Tag holds the heading level tag ("h1", "h2", ...) for KindHeading.
	Tag string

	// Text and Format describe a KindText run.
	Text   string
	Format Format

	// ListType is ListTypeOrdered or ListTypeUnordered for KindList.
	ListType string

	// URL is the link target for KindLink.
	URL string
}

// HasSingleListChild reports whether the node's only child is itself a list.
// List items satisfying this predicate emit no marker of their own: the
// nested list's items produce the markers one level down.
func (n *Node) HasSingleListChild() bool {
	return n != nil && len(n.Children) == 1 && n.Children[0] != nil && n.Children[0].Kind == KindList
}

// Append adds children to the node and returns it for fluent tree building.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Heading builds a heading node with the supplied level tag.
func Heading(tag string, children ...*Node) *Node {
	return &Node{Kind: KindHeading, Tag: tag, Children: children}
}

// Paragraph builds a paragraph node.
func Paragraph(children ...*Node) *Node {
	return &Node{Kind: KindParagraph, Children: children}
}

// List builds a list node with the supplied ordering tag.
func List(listType string, children ...*Node) *Node {
	return &Node{Kind: KindList, ListType: listType, Children: children}
}

// ListItem builds a list item node.
func ListItem(children ...*Node) *Node {
	return &Node{Kind: KindListItem, Children: children}
}

// Quote builds a block quote node.
func Quote(children ...*Node) *Node {
	return &Node{Kind: KindQuote, Children: children}
}

// Text builds a text run with the supplied format flags.
func Text(content string, format Format) *Node {
	return &Node{Kind: KindText, Text: content, Format: format}
}

// LineBreak builds an explicit line break node.
func LineBreak() *Node {
	return &Node{Kind: KindLineBreak}
}

// Code builds a code block node.
func Code(children ...*Node) *Node {
	return &Node{Kind: KindCode, Children: children}
}

// Link builds a link node wrapping the supplied children.
func Link(url string, children ...*Node) *Node {
	return &Node{Kind: KindLink, URL: url, Children: children}
}
