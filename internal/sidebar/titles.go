package sidebar

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var frontMatterDelim = []byte("---")

// documentTitle returns the display title declared by a markdown document:
// the front matter "title" key when present, otherwise the text of the first
// level-1 heading. It returns "" when the document declares neither.
func documentTitle(src []byte) string {
	fm, body := splitFrontMatter(src)
	if len(fm) > 0 {
		var meta struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal(fm, &meta); err == nil {
			if t := strings.TrimSpace(meta.Title); t != "" {
				return t
			}
		}
	}
	return firstHeading(body)
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body. Documents without a closed block are returned unchanged.
func splitFrontMatter(src []byte) (frontMatter, body []byte) {
	trimmed := bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, src
	}
	rest := trimmed[len(frontMatterDelim):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return nil, src
	}
	rest = rest[nl+1:]

	for offset := 0; offset < len(rest); {
		end := bytes.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		next := len(rest)
		if end >= 0 {
			line = rest[offset : offset+end]
			next = offset + end + 1
		}
		if bytes.Equal(bytes.TrimRight(line, " \t\r"), frontMatterDelim) {
			return rest[:offset], rest[next:]
		}
		offset = next
	}
	return nil, src
}

func firstHeading(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = inlineText(h, src)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
