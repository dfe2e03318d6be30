// Package table extracts text from the first HTML table of a document.
package table

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrNoTable is returned when the document has no table element.
	ErrNoTable = errors.New("no table element found")

	// ErrNoBody is returned when the first table has no tbody element.
	ErrNoBody = errors.New("first table has no tbody element")
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FirstBody returns the first tbody of the first table in document order.
// Tables after the first are never considered.
func (d *Document) FirstBody() (*html.Node, error) {
	t := findFirst(d.root, atom.Table)
	if t == nil {
		return nil, ErrNoTable
	}
	body := findFirst(t, atom.Tbody)
	if body == nil {
		return nil, ErrNoBody
	}
	return body, nil
}

// Text returns the text content of n in document order, one cell per line.
// Each td/th contributes its trimmed text followed by a newline. Text
// outside cells is trimmed and emitted as its own line, or dropped when it
// is only whitespace.
func Text(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if isCell(c) {
				b.WriteString(cellText(c))
				b.WriteByte('\n')
				continue
			}
			writeText(b, c)
		case html.TextNode:
			if s := strings.TrimSpace(c.Data); s != "" {
				b.WriteString(s)
				b.WriteByte('\n')
			}
		}
	}
}

// Rows returns the cell texts of every row under n. Rows of nested tables
// are not included and rows without cells are skipped.
func Rows(n *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				continue
			case atom.Tr:
				if cells := rowCells(c); len(cells) > 0 {
					rows = append(rows, cells)
				}
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if isCell(c) {
			cells = append(cells, cellText(c))
		}
	}
	return cells
}

// cellText joins all text below n with runs of whitespace collapsed.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func isCell(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Td || n.DataAtom == atom.Th)
}

// findFirst returns the first descendant of n with tag a in pre-order.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}
