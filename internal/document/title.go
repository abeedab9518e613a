package document

import "strings"

// Title returns the plain text of the first h1 or h2 heading in document
// order, or an empty string when the tree has none. Export workflows use it
// to derive slugs and frontmatter titles.
func (t *Tree) Title() string {
	if t == nil || t.Root == nil {
		return ""
	}
	for _, entry := range t.Flatten() {
		node := entry.Node
		if node.Kind != KindHeading {
			continue
		}
		if node.Tag != HeadingTagH1 && node.Tag != HeadingTagH2 {
			continue
		}
		if title := strings.TrimSpace(plainText(node)); title != "" {
			return title
		}
	}
	return ""
}

func plainText(n *Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(node *Node)
	walk = func(node *Node) {
		if node.Kind == KindText {
			sb.WriteString(node.Text)
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
