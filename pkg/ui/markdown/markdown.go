// Package markdown renders assistant replies and command output to
// ANSI-styled terminal text. Parsing is done by goldmark, styling by lipgloss.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"solar_cli/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const defaultWidth = 80

// Render parses markdown source and returns styled terminal output.
// Paragraphs and list items are word-wrapped to width; code blocks keep
// their lines as written.
func Render(source string, width int) string {
	source = sanitize(source)
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	return newRenderer().render([]byte(source), width)
}

// Wrap word-wraps text to width without interpreting markdown.
func Wrap(text string, width int) string {
	text = sanitize(text)
	if width <= 0 {
		width = defaultWidth
	}
	return trimLines(wrap(text, width))
}

type renderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	heading   lipgloss.Style
	code      lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer() *renderer {
	return &renderer{
		bold:      styles.TextBoldStyle,
		italic:    lipgloss.NewStyle().Italic(true),
		heading:   styles.TitleStyle,
		code:      styles.CodeStyle,
		muted:     lipgloss.NewStyle().Foreground(styles.ColorTextMuted),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func (r *renderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	r.walkBlock(doc, source, width, &buf)
	return trimLines(buf.String())
}

func (r *renderer) walkBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, buf)
	}
}

func (r *renderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		buf.WriteString(wrap(r.collectInline(n, source), width))
		buf.WriteString("\n")

	case *ast.Heading:
		buf.WriteString(wrap(r.heading.Render(r.collectInline(n, source)), width))
		buf.WriteString("\n")

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(source)); lang != "" {
			buf.WriteString(r.muted.Render(lang))
			buf.WriteString("\n")
		}
		r.writeCodeLines(n, source, buf)

	case *ast.CodeBlock:
		r.writeCodeLines(n, source, buf)

	case *ast.List:
		r.renderList(n, source, width, buf, 0)

	case *ast.Blockquote:
		var inner bytes.Buffer
		r.walkBlock(n, source, width-2, &inner)
		gutter := r.muted.Render("│") + " "
		for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
			buf.WriteString(gutter + line + "\n")
		}

	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render(strings.Repeat("─", min(width, 40))))
		buf.WriteString("\n")

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(source))
		}

	default:
		r.walkBlock(node, source, width, buf)
		return
	}

	if node.NextSibling() != nil {
		buf.WriteString("\n")
	}
}

func (r *renderer) writeCodeLines(node ast.Node, source []byte, buf *bytes.Buffer) {
	gutter := r.muted.Render("│") + " "
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		content := strings.TrimRight(string(line.Value(source)), "\n")
		buf.WriteString(gutter + r.code.Render(content))
		buf.WriteString("\n")
	}
}

func (r *renderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	ordered := node.IsOrdered()
	itemNum := node.Start

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		marker := "• "
		if ordered {
			marker = fmt.Sprintf("%d. ", itemNum)
			itemNum++
		}

		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if itemBuf.Len() > 0 {
					itemBuf.WriteString(" ")
				}
				itemBuf.WriteString(r.collectInline(in, source))
			case *ast.List:
				if itemBuf.Len() > 0 {
					writeListItem(buf, indent, marker, itemBuf.String(), width)
					itemBuf.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", lipgloss.Width(marker))
			default:
				r.renderBlock(ic, source, width, &itemBuf)
			}
		}

		if itemBuf.Len() > 0 {
			writeListItem(buf, indent, marker, itemBuf.String(), width)
		}
	}
}

// writeListItem indents wrapped continuation lines under the marker.
func writeListItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	prefixWidth := lipgloss.Width(prefix)
	itemWidth := width - prefixWidth
	if itemWidth < 10 {
		itemWidth = 10
	}
	continuation := strings.Repeat(" ", prefixWidth)
	for i, line := range strings.Split(wrap(content, itemWidth), "\n") {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

func (r *renderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *renderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.collectInline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		buf.WriteString(r.code.Render(r.collectInline(n, source)))

	case *ast.Link:
		buf.WriteString(r.underline.Render(r.collectInline(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	case *ast.Image:
		buf.WriteString(r.underline.Render(r.collectInline(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(source))
		}

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// trimLines drops the padding lipgloss adds when wrapping and the trailing
// blank lines left by the last block.
func trimLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// sanitize strips control characters other than newline and tab so model
// output cannot move the cursor or change terminal modes.
func sanitize(content string) string {
	if content == "" {
		return content
	}
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch r {
		case '\n', '\t':
			sb.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
