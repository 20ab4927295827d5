// Package dom is the HTML document surface for the form validator. It parses,
// builds and renders pages with golang.org/x/net/html and applies the
// validator's presentation effects to the node tree.
package dom

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/colonyops/formcheck/internal/core/formvalidator"
)

// Document is a parsed HTML page.
type Document struct {
	root  *html.Node
	forms map[*html.Node]*Form
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return newDocument(root), nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(bytes.NewBufferString(s))
}

func newDocument(root *html.Node) *Document {
	return &Document{root: root, forms: make(map[*html.Node]*Form)}
}

// Render writes the document, including any presentation changes, as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// Form returns the form element with the given id. Repeated lookups return the
// same *Form, so field identity is stable for the lifetime of the document.
func (d *Document) Form(id string) (*Form, bool) {
	node := findFirst(d.root, func(n *html.Node) bool {
		return isElement(n, atom.Form) && attrOr(n, "id", "") == id
	})
	if node == nil {
		return nil, false
	}

	if f, ok := d.forms[node]; ok {
		return f, true
	}

	f := newForm(node)
	d.forms[node] = f
	return f, true
}

// FormByID implements formvalidator.Locator.
func (d *Document) FormByID(id string) (formvalidator.Surface, bool) {
	f, ok := d.Form(id)
	if !ok {
		return nil, false
	}
	return f, true
}
