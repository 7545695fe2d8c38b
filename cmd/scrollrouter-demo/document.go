package main

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"
)

//go:embed sample.md
var sampleDocument string

// section is one "## " block of the document, measured in rows.
type section struct {
	title string
	route string
	top   int
	lines []string
}

type document struct {
	lines    []string
	sections []section
}

// parseDocument splits text into sections at "## " headings. Text before
// the first heading becomes an untitled introduction.
func parseDocument(text string) (*document, error) {
	doc := &document{}
	seen := make(map[string]bool)

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if title, ok := strings.CutPrefix(line, "## "); ok {
			title = strings.TrimSpace(title)
			route := "/" + slugify(title)
			if seen[route] {
				return nil, fmt.Errorf("duplicate section route %s", route)
			}
			seen[route] = true
			doc.sections = append(doc.sections, section{title: title, route: route, top: len(doc.lines)})
		} else if len(doc.sections) == 0 {
			if strings.TrimSpace(line) == "" && len(doc.lines) == 0 {
				continue
			}
			doc.sections = append(doc.sections, section{title: "Introduction", route: "/", top: len(doc.lines)})
			seen["/"] = true
		}

		doc.lines = append(doc.lines, line)
		cur := &doc.sections[len(doc.sections)-1]
		cur.lines = append(cur.lines, line)
	}

	if len(doc.sections) == 0 {
		return nil, fmt.Errorf("document has no sections")
	}
	return doc, nil
}

func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
