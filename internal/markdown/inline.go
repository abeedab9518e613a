package markdown

import (
	"strings"

	"github.com/goliatone/go-richtext/internal/document"
)

// linkTextEscaper backslash-prefixes the characters that would terminate or
// corrupt the bracketed link text. Plain text outside links is left alone.
var linkTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeLinkText(text string) string {
	return linkTextEscaper.Replace(text)
}

// escapeURL percent-encodes closing parentheses, which would otherwise end
// the Markdown link target early. No other character is altered.
func escapeURL(url string) string {
	return strings.ReplaceAll(url, ")", "%29")
}

// wrapFormats applies the active inline styles innermost to outermost in a
// fixed order: code, bold, italic, strikethrough. The order never varies with
// the flag combination so output stays deterministic.
func wrapFormats(text string, format document.Format) string {
	if format.Has(document.FormatCode) {
		text = "`" + text + "`"
	}
	if format.Has(document.FormatBold) {
		text = "**" + text + "**"
	}
	if format.Has(document.FormatItalic) {
		text = "*" + text + "*"
	}
	if format.Has(document.FormatStrikethrough) {
		text = "~~" + text + "~~"
	}
	return text
}
