package markdown

import (
	"fmt"
	"math"
	"strings"

	"github.com/goliatone/go-richtext/internal/document"
)

// endOfSequence is the sentinel depth used once the input is exhausted. It
// sits below every real depth so the final close-out pass drains all stacks.
const endOfSequence = math.MinInt

const listIndent = "    "

// Exporter serializes a flattened document tree into Markdown text. The
// exporter is stateless: every Serialize call allocates fresh stacks and an
// output buffer, so a single instance can be reused across goroutines.
type Exporter struct{}

// NewExporter constructs a Markdown exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Serialize walks the pre-order entries once, emitting opening markers
// eagerly and closing markers lazily: after each node's emission the depth of
// the upcoming entry decides which open scopes have ended. Blocks carry no
// end-marker nodes in the tree, so the depth drop is the only close signal.
//
// The input must be a valid pre-order DFS linearization (see
// document.ValidateSequence). Serialize does not check this precondition and
// produces best-effort output for malformed sequences.
func (e *Exporter) Serialize(entries []document.Entry) string {
	state := newSerializerState()
	for i, entry := range entries {
		state.emit(entry)
		nextDepth := endOfSequence
		if i+1 < len(entries) {
			nextDepth = entries[i+1].Depth
		}
		state.closeOut(nextDepth)
	}
	return state.out.String()
}

type linkFrame struct {
	depth   int
	closing string
}

type listFrame struct {
	depth   int
	counter int
	ordered bool
}

// serializerState is the single mutable accumulator threaded through one
// Serialize pass: the output buffer, four independent nesting stacks, and the
// first-break flag. Nothing in it survives the call.
type serializerState struct {
	out    strings.Builder
	links  []linkFrame
	lists  []listFrame
	quotes []int
	codes  []int

	// breakSeen flips permanently on the first paragraph so that empty
	// leading paragraphs still separate the blocks that follow them, while
	// the very first line of output never starts blank.
	breakSeen bool
}

func newSerializerState() *serializerState {
	return &serializerState{}
}

func (s *serializerState) emit(entry document.Entry) {
	node, depth := entry.Node, entry.Depth
	if node == nil {
		return
	}

	switch node.Kind {
	case document.KindHeading:
		switch node.Tag {
		case document.HeadingTagH1:
			s.lineBreak()
			s.out.WriteString("# ")
		case document.HeadingTagH2:
			s.lineBreak()
			s.out.WriteString("## ")
		}
	case document.KindList:
		s.lists = append(s.lists, listFrame{
			depth:   depth,
			ordered: node.ListType == document.ListTypeOrdered,
		})
	case document.KindListItem:
		s.emitListItem(node)
	case document.KindText:
		s.out.WriteString(s.renderText(node))
	case document.KindParagraph:
		s.lineBreak()
		s.breakSeen = true
	case document.KindQuote:
		s.lineBreak()
		s.out.WriteString("> ")
		s.quotes = append(s.quotes, depth)
	case document.KindLineBreak:
		s.lineBreak()
	case document.KindCode:
		s.lineBreak()
		s.out.WriteString("```\n")
		s.codes = append(s.codes, depth)
	case document.KindLink:
		s.out.WriteString("[")
		s.links = append(s.links, linkFrame{
			depth:   depth,
			closing: "](" + escapeURL(node.URL) + ")",
		})
	case document.KindOther:
		// no emission
	}
}

func (s *serializerState) emitListItem(node *document.Node) {
	// A list nested directly inside an item renders its own markers one
	// level down; emitting one here would double them up.
	if node.HasSingleListChild() {
		return
	}

	s.lineBreak()
	if len(s.lists) == 0 {
		s.out.WriteString("- ")
		return
	}

	indent := strings.Repeat(listIndent, len(s.lists)-1)
	top := &s.lists[len(s.lists)-1]
	if top.ordered {
		top.counter++
		fmt.Fprintf(&s.out, "%s%d. ", indent, top.counter)
		return
	}
	s.out.WriteString(indent + "- ")
}

func (s *serializerState) renderText(node *document.Node) string {
	content := node.Text
	if len(s.links) > 0 {
		content = escapeLinkText(content)
	}
	return wrapFormats(content, node.Format)
}

// closeOut pops every frame whose scope ended before nextDepth. Link frames
// go first: link scope is always the narrowest, since a link's content sits
// inside any enclosing code, list, or quote context and never the reverse.
func (s *serializerState) closeOut(nextDepth int) {
	if n := len(s.links); n > 0 && nextDepth <= s.links[n-1].depth {
		s.out.WriteString(s.links[n-1].closing)
		s.links = s.links[:n-1]
	}

	for n := len(s.codes); n > 0 && nextDepth <= s.codes[n-1]; n = len(s.codes) {
		s.out.WriteString("\n```")
		s.codes = s.codes[:n-1]
	}

	// List frames carry no closing text: markers were emitted per item.
	for n := len(s.lists); n > 0 && nextDepth <= s.lists[n-1].depth; n = len(s.lists) {
		s.lists = s.lists[:n-1]
	}

	// The extra newline keeps trailing text from reading as quoted.
	for n := len(s.quotes); n > 0 && nextDepth <= s.quotes[n-1]; n = len(s.quotes) {
		s.out.WriteByte('\n')
		s.quotes = s.quotes[:n-1]
	}
}

// lineBreak appends a newline unless the output is still empty and no
// paragraph has been seen, which suppresses a blank first line.
func (s *serializerState) lineBreak() {
	if s.out.Len() > 0 || s.breakSeen {
		s.out.WriteByte('\n')
	}
}
