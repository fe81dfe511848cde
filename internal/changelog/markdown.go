package changelog

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// scanMarkdown parses doc as Markdown and only considers level-2 headings
// of the document tree, so "## Version" lines inside code blocks, block
// quotes or list items neither start nor end an entry.
// Spans are cut from the raw text, so entries stay verbatim.
func (e *Extractor) scanMarkdown(doc string) []Match {
	source := []byte(doc)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var lines []headingLine
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}
		if heading.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		start, end := lineBounds(doc, heading.Lines().At(0).Start)
		lines = append(lines, headingLine{start: start, text: doc[start:end]})
		return ast.WalkSkipChildren, nil
	})

	var bounds []int
	for _, l := range lines {
		if loc := e.boundary.FindStringIndex(l.text); loc != nil && loc[0] == 0 {
			bounds = append(bounds, l.start)
		}
	}

	var matches []Match
	for _, l := range lines {
		version, ok := e.ParseVersion(l.text)
		if !ok {
			continue
		}
		end := nextBoundary(bounds, l.start, len(doc))
		matches = append(matches, Match{
			Text:    doc[l.start:end],
			Version: version,
			Start:   l.start,
			End:     end,
		})
	}
	return matches
}

type headingLine struct {
	start int
	text  string // raw line including its terminator, if any
}

// lineBounds returns the start of the line containing pos and the offset
// just past its line terminator.
func lineBounds(doc string, pos int) (int, int) {
	start := strings.LastIndexByte(doc[:pos], '\n') + 1
	end := len(doc)
	if i := strings.IndexByte(doc[pos:], '\n'); i >= 0 {
		end = pos + i + 1
	}
	return start, end
}
