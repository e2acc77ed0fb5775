package content

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/theme"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// mdStyles are resolved per render so a theme change is picked up after the
// cache is purged.
type mdStyles struct {
	h1, h2, h3 lipgloss.Style
	bold       lipgloss.Style
	italic     lipgloss.Style
	code       lipgloss.Style
	link       lipgloss.Style
	dim        lipgloss.Style
	quote      lipgloss.Style
}

func newMDStyles() mdStyles {
	accent := theme.Accent()
	return mdStyles{
		h1:     lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		h2:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		h3:     lipgloss.NewStyle().Bold(true),
		bold:   lipgloss.NewStyle().Bold(true),
		italic: lipgloss.NewStyle().Italic(true),
		code:   lipgloss.NewStyle().Foreground(theme.Warn()),
		link:   lipgloss.NewStyle().Foreground(accent).Underline(true),
		dim:    lipgloss.NewStyle().Foreground(theme.Dim()),
		quote:  lipgloss.NewStyle().Foreground(theme.Dim()).Italic(true),
	}
}

// RenderMarkdown renders CommonMark source as styled terminal text wrapped
// to width. Unsupported constructs fall back to their plain text.
func RenderMarkdown(src string, width int) string {
	return strings.Join(markdownLines([]byte(src), width), "\n")
}

// RenderInline renders a single paragraph of inline markdown, such as a
// project description, without block spacing.
func RenderInline(src string, width int) string {
	lines := markdownLines([]byte(src), width)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func markdownLines(src []byte, width int) []string {
	doc := markdown.Parser().Parse(text.NewReader(src))
	r := &mdRenderer{src: src, st: newMDStyles()}
	return r.blocks(doc, max(width, 1), true)
}

type mdRenderer struct {
	src []byte
	st  mdStyles
}

// blocks renders the block children of parent. Spaced separates siblings
// with a blank line, which tight list items do not get.
func (r *mdRenderer) blocks(parent ast.Node, width int, spaced bool) []string {
	var lines []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if spaced && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.block(c, width)...)
	}
	return lines
}

func (r *mdRenderer) block(n ast.Node, width int) []string {
	switch n := n.(type) {
	case *ast.Heading:
		style := r.st.h3
		switch n.Level {
		case 1:
			style = r.st.h1
		case 2:
			style = r.st.h2
		}
		return wrapLines(style.Render(r.plain(n)), width)

	case *ast.Paragraph, *ast.TextBlock:
		return wrapLines(r.inline(n), width)

	case *ast.List:
		return r.list(n, width)

	case *ast.Blockquote:
		bar := r.st.dim.Render("│ ")
		inner := r.blocks(n, max(width-2, 1), true)
		for i, l := range inner {
			inner[i] = bar + r.st.quote.Render(l)
		}
		return inner

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var out []string
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(r.src)), "\n")
			out = append(out, r.st.code.Render("  "+line))
		}
		return out

	case *ast.ThematicBreak:
		return []string{r.st.dim.Render(strings.Repeat("─", width))}

	case *ast.HTMLBlock:
		return nil

	default:
		return r.blocks(n, width, true)
	}
}

func (r *mdRenderer) list(n *ast.List, width int) []string {
	var lines []string
	num := n.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		bullet := "• "
		if n.IsOrdered() {
			bullet = fmt.Sprintf("%d. ", num)
			num++
		}
		pad := strings.Repeat(" ", lipgloss.Width(bullet))
		body := r.blocks(item, max(width-len(pad), 1), !n.IsTight)
		for i, l := range body {
			if i == 0 {
				lines = append(lines, r.st.dim.Render(bullet)+l)
			} else {
				lines = append(lines, pad+l)
			}
		}
	}
	return lines
}

// inline renders the inline children of n with styles applied.
func (r *mdRenderer) inline(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(r.src))
			switch {
			case c.HardLineBreak():
				sb.WriteByte('\n')
			case c.SoftLineBreak():
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		case *ast.CodeSpan:
			sb.WriteString(r.st.code.Render(r.plain(c)))
		case *ast.Emphasis:
			if c.Level >= 2 {
				sb.WriteString(r.st.bold.Render(r.inline(c)))
			} else {
				sb.WriteString(r.st.italic.Render(r.inline(c)))
			}
		case *ast.Link:
			label := r.plain(c)
			dest := string(c.Destination)
			sb.WriteString(r.st.link.Render(label))
			if dest != "" && dest != label {
				sb.WriteString(r.st.dim.Render(" (" + dest + ")"))
			}
		case *ast.AutoLink:
			sb.WriteString(r.st.link.Render(string(c.URL(r.src))))
		case *ast.RawHTML:
		default:
			sb.WriteString(r.inline(c))
		}
	}
	return sb.String()
}

// plain collects the unstyled text under n.
func (r *mdRenderer) plain(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(r.src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// wrapLines wraps styled text to width and splits it into lines.
func wrapLines(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(lipgloss.Wrap(s, width, ""), "\n")
}
