package markdown

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const frontMatterDelimiter = "---\n"

// encodeExported assembles the bytes written to an exported Markdown file:
// a YAML frontmatter block carrying title, slug, source checksum, and export
// time, followed by the serialized body.
func encodeExported(fm interfaces.FrontMatter, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	buf.WriteString(frontMatterDelimiter)
	buf.WriteString("\n")
	buf.WriteString(body)
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// ParseExported extracts the frontmatter and Markdown body from a previously
// exported file. Sync runs use the recorded checksum to detect unchanged
// sources without re-serializing.
func ParseExported(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta interfaces.FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.MustParse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	// encodeExported separates frontmatter and body with a blank line.
	body = bytes.TrimLeft(body, "\r\n")
	return meta, body, nil
}

func buildFrontMatter(title, slug string, checksum []byte, exported time.Time) interfaces.FrontMatter {
	return interfaces.FrontMatter{
		Title:    title,
		Slug:     slug,
		Checksum: hex.EncodeToString(checksum),
		Exported: exported.UTC(),
	}
}
