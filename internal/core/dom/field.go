package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/colonyops/formcheck/internal/core/validate"
)

// Class names written onto the document.
const (
	ClassError          = "error"
	ClassCorrect        = "correct"
	ClassUserInteracted = "user-interacted"
	ClassErrorMessage   = "error-message"
	ClassFormMessage    = "form-message"
)

// Field is one form control backed by an element node.
type Field struct {
	node *html.Node
	form *Form
}

// Name is the control's name attribute, falling back to its id.
func (f *Field) Name() string {
	if name := attrOr(f.node, "name", ""); name != "" {
		return name
	}
	return attrOr(f.node, "id", "")
}

// ID is the control's id attribute.
func (f *Field) ID() string { return attrOr(f.node, "id", "") }

// Required reports whether the control carries the required attribute.
func (f *Field) Required() bool { return hasAttr(f.node, "required") }

func (f *Field) Kind() validate.Kind {
	return validate.ParseKind(f.node.Data, attrOr(f.node, "type", ""))
}

func (f *Field) Rule() validate.Rule {
	return validate.Rule{Kind: f.Kind(), Required: f.Required()}
}

// Label returns the raw label text: the form's label[for=id], else the first
// label in the field's container.
func (f *Field) Label() string {
	if id := f.ID(); id != "" {
		label := findFirst(f.form.node, func(n *html.Node) bool {
			return isElement(n, atom.Label) && attrOr(n, "for", "") == id
		})
		if label != nil {
			return textContent(label)
		}
	}

	if c := f.container(); c != nil {
		if label := findFirst(c, func(n *html.Node) bool { return isElement(n, atom.Label) }); label != nil {
			return textContent(label)
		}
	}
	return ""
}

// Value is the control's current value, untrimmed.
func (f *Field) Value() string {
	switch f.node.DataAtom {
	case atom.Select:
		opt := f.selectedOption()
		if opt == nil {
			return ""
		}
		return optionValue(opt)
	case atom.Textarea:
		return textContent(f.node)
	default:
		return attrOr(f.node, "value", "")
	}
}

// SetValue updates the control's value. For selection fields value must match an
// option's value.
func (f *Field) SetValue(value string) error {
	switch f.node.DataAtom {
	case atom.Select:
		opts := f.options()
		var match *html.Node
		for _, o := range opts {
			if optionValue(o) == value {
				match = o
				break
			}
		}
		if match == nil {
			return fmt.Errorf("field %q has no option %q", f.Name(), value)
		}
		for _, o := range opts {
			removeAttr(o, "selected")
		}
		setAttr(match, "selected", "")
	case atom.Textarea:
		setText(f.node, value)
	default:
		setAttr(f.node, "value", value)
	}
	return nil
}

// HasClass reports whether the control carries class.
func (f *Field) HasClass(class string) bool { return hasClass(f.node, class) }

// ErrorMessage returns the text of the field's error message node, if any.
func (f *Field) ErrorMessage() (string, bool) {
	nodes := f.errorNodes()
	if len(nodes) == 0 {
		return "", false
	}
	return textContent(nodes[0]), true
}

// ErrorMessageCount is the number of error message nodes scoped to this field.
func (f *Field) ErrorMessageCount() int { return len(f.errorNodes()) }

func (f *Field) container() *html.Node { return f.node.Parent }

func (f *Field) errorNodes() []*html.Node {
	c := f.container()
	if c == nil {
		return nil
	}
	name := f.Name()
	return findAll(c, func(n *html.Node) bool {
		return n.Type == html.ElementNode &&
			hasClass(n, ClassErrorMessage) &&
			attrOr(n, "data-field", name) == name
	})
}

func (f *Field) options() []*html.Node {
	return findAll(f.node, func(n *html.Node) bool { return isElement(n, atom.Option) })
}

func (f *Field) selectedOption() *html.Node {
	opts := f.options()
	if len(opts) == 0 {
		return nil
	}
	for _, o := range opts {
		if hasAttr(o, "selected") {
			return o
		}
	}
	return opts[0]
}

func optionValue(opt *html.Node) string {
	if v, ok := attr(opt, "value"); ok {
		return v
	}
	return strings.TrimSpace(textContent(opt))
}
