// Package markdown serializes rich-text document trees into Markdown. The
// exporter is the core: a single pre-order pass over a depth-annotated node
// sequence that opens block scopes eagerly and closes them by depth
// comparison, since the tree carries no end-marker nodes. The surrounding
// service adds file discovery, frontmatter stamping, and checksum-based sync;
// the goldmark renderer exists only so previews can show exported output as
// HTML.
package markdown
