// Package xmlenc writes markup element trees as XML text.
//
// The writer is deliberately small: elements carry string attributes and
// child elements only (no text nodes), empty elements self-close, and the
// optional declaration may name an encoding that differs from the byte
// encoding, which the target document format requires (document.xml declares
// utf-16 while the archive stores utf-8 bytes). It performs no parsing.
package xmlenc

import (
	"bufio"
	"io"
	"strings"

	"github.com/gtgfx/gtgraphics/pkg/markup"
)

// Option configures a single Write call.
type Option func(*writer)

// WithIndent enables pretty printing with the given unit of indentation.
func WithIndent(unit string) Option {
	return func(w *writer) { w.indent = unit }
}

// WithDeclaration prepends an XML declaration naming the given encoding.
func WithDeclaration(encoding string) Option {
	return func(w *writer) {
		w.declaration = true
		w.encoding = encoding
	}
}

type writer struct {
	out         *bufio.Writer
	indent      string
	declaration bool
	encoding    string
}

// Write renders root to w.
func Write(w io.Writer, root *markup.Element, opts ...Option) error {
	wr := &writer{out: bufio.NewWriter(w), encoding: "utf-8"}
	for _, opt := range opts {
		opt(wr)
	}
	if wr.declaration {
		wr.out.WriteString("<?xml version='1.0' encoding='")
		wr.out.WriteString(wr.encoding)
		wr.out.WriteString("'?>\n")
	}
	wr.element(root, 0)
	if wr.indent != "" {
		wr.out.WriteByte('\n')
	}
	return wr.out.Flush()
}

// String renders root and returns the text. Convenience for tests and logs.
func String(root *markup.Element, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, root, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (w *writer) element(el *markup.Element, depth int) {
	w.pad(depth)
	w.out.WriteByte('<')
	w.out.WriteString(el.Tag)
	for _, a := range el.Attrs {
		w.out.WriteByte(' ')
		w.out.WriteString(a.Name)
		w.out.WriteString(`="`)
		w.escape(a.Value)
		w.out.WriteByte('"')
	}
	if len(el.Children) == 0 {
		w.out.WriteString(" />")
		return
	}
	w.out.WriteByte('>')
	for _, c := range el.Children {
		if w.indent != "" {
			w.out.WriteByte('\n')
		}
		w.element(c, depth+1)
	}
	if w.indent != "" {
		w.out.WriteByte('\n')
		w.pad(depth)
	}
	w.out.WriteString("</")
	w.out.WriteString(el.Tag)
	w.out.WriteByte('>')
}

func (w *writer) pad(depth int) {
	if w.indent == "" {
		return
	}
	for i := 0; i < depth; i++ {
		w.out.WriteString(w.indent)
	}
}

func (w *writer) escape(s string) {
	for _, r := range s {
		switch r {
		case '&':
			w.out.WriteString("&amp;")
		case '<':
			w.out.WriteString("&lt;")
		case '>':
			w.out.WriteString("&gt;")
		case '"':
			w.out.WriteString("&quot;")
		case '\n':
			w.out.WriteString("&#10;")
		case '\r':
			w.out.WriteString("&#13;")
		case '\t':
			w.out.WriteString("&#9;")
		default:
			w.out.WriteRune(r)
		}
	}
}
