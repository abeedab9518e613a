package document

import "errors"

// ErrMalformedSequence reports a flattened sequence that violates the
// pre-order depth discipline: the first entry must sit at depth zero and
// every subsequent entry may descend at most one level below its
// predecessor while never rising above depth one.
var ErrMalformedSequence = errors.New("document: sequence violates pre-order depth discipline")

// Tree is a rooted, ordered document tree. The root is usually a KindOther
// container carrying the top-level blocks as children.
type Tree struct {
	Root *Node
}

// NewTree wraps the supplied blocks in a container root.
func NewTree(blocks ...*Node) *Tree {
	return &Tree{Root: &Node{Kind: KindOther, Children: blocks}}
}

// Entry pairs a node with its depth in the flattened pre-order sequence.
// Depth is the node's distance from the tree root.
type Entry struct {
	Node  *Node
	Depth int
}

// Flatten produces the complete pre-order depth-first linearization of the
// tree: each node is immediately followed by its children, all at strictly
// greater depth. The sequence is computed once, up front; the exporter never
// re-queries the tree mid-pass.
func (t *Tree) Flatten() []Entry {
	if t == nil || t.Root == nil {
		return nil
	}
	entries := make([]Entry, 0, countNodes(t.Root))
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		entries = append(entries, Entry{Node: n, Depth: depth})
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(t.Root, 0)
	return entries
}

// ValidateSequence checks the bracket discipline a flattened sequence must
// satisfy before serialization. Callers that skip this check get the
// exporter's permissive best-effort behaviour instead.
func ValidateSequence(entries []Entry) error {
	for i, entry := range entries {
		if entry.Node == nil {
			return ErrMalformedSequence
		}
		if i == 0 {
			if entry.Depth != 0 {
				return ErrMalformedSequence
			}
			continue
		}
		if entry.Depth < 1 || entry.Depth > entries[i-1].Depth+1 {
			return ErrMalformedSequence
		}
	}
	return nil
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += countNodes(child)
	}
	return total
}
