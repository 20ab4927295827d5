package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/colonyops/formcheck/internal/core/formvalidator"
)

// Form is a located form element. It implements formvalidator.Surface and
// formvalidator.Valuer.
type Form struct {
	node     *html.Node
	controls []*Field

	banner   *html.Node
	bannerID formvalidator.BannerID
}

var (
	_ formvalidator.Surface = (*Form)(nil)
	_ formvalidator.Valuer  = (*Form)(nil)
)

func newForm(node *html.Node) *Form {
	f := &Form{node: node}
	for _, n := range findAll(node, isControl) {
		f.controls = append(f.controls, &Field{node: n, form: f})
	}
	return f
}

func isControl(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Select, atom.Textarea:
		return true
	case atom.Input:
		switch strings.ToLower(attrOr(n, "type", "")) {
		case "submit", "button", "reset", "image":
			return false
		}
		return true
	}
	return false
}

// ID is the form's id attribute.
func (f *Form) ID() string { return attrOr(f.node, "id", "") }

// Fields returns every control in document order.
func (f *Form) Fields() []*Field {
	out := make([]*Field, len(f.controls))
	copy(out, f.controls)
	return out
}

// Field looks up a control by name or id.
func (f *Form) Field(name string) (*Field, bool) {
	for _, c := range f.controls {
		if c.Name() == name || c.ID() == name {
			return c, true
		}
	}
	return nil, false
}

// RequiredFields returns input and select controls marked required, in document
// order.
func (f *Form) RequiredFields() []formvalidator.Field {
	var out []formvalidator.Field
	for _, c := range f.controls {
		if c.node.DataAtom == atom.Textarea || !c.Required() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Values reports every named control's trimmed value.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.controls))
	for _, c := range f.controls {
		name := c.Name()
		if name == "" {
			continue
		}
		out[name] = strings.TrimSpace(c.Value())
	}
	return out
}

func (f *Form) SetState(field formvalidator.Field, s formvalidator.State) {
	c, ok := f.own(field)
	if !ok {
		return
	}

	removeClass(c.node, ClassError, ClassCorrect)
	switch s {
	case formvalidator.StateValid:
		addClass(c.node, ClassCorrect)
	case formvalidator.StateInvalid:
		addClass(c.node, ClassError)
	}
}

func (f *Form) ShowError(field formvalidator.Field, message string) {
	c, ok := f.own(field)
	if !ok {
		return
	}

	f.ClearError(field)

	container := c.container()
	if container == nil {
		return
	}
	container.AppendChild(textElement(atom.Div, message,
		html.Attribute{Key: "class", Val: ClassErrorMessage},
		html.Attribute{Key: "data-field", Val: c.Name()},
	))
}

func (f *Form) ClearError(field formvalidator.Field) {
	c, ok := f.own(field)
	if !ok {
		return
	}
	for _, n := range c.errorNodes() {
		detach(n)
	}
}

func (f *Form) MarkInteracted(field formvalidator.Field) {
	if c, ok := f.own(field); ok {
		addClass(c.node, ClassUserInteracted)
	}
}

// ShowBanner removes any existing form message and inserts b as the form's first
// child.
func (f *Form) ShowBanner(b formvalidator.Banner) {
	for _, n := range findAll(f.node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, ClassFormMessage)
	}) {
		detach(n)
	}

	node := element(atom.Div, html.Attribute{Key: "class", Val: ClassFormMessage + " " + b.Kind.String()})
	switch b.Kind {
	case formvalidator.BannerErrorSummary:
		node.AppendChild(textElement(atom.Strong, b.Title))
		list := element(atom.Ul)
		for _, item := range b.Items {
			list.AppendChild(textElement(atom.Li, item))
		}
		node.AppendChild(list)
	default:
		node.AppendChild(&html.Node{Type: html.TextNode, Data: b.Title})
	}

	prepend(f.node, node)
	f.banner = node
	f.bannerID = b.ID
}

// RemoveBanner detaches the banner with id if it is still the current one and
// still attached to the document.
func (f *Form) RemoveBanner(id formvalidator.BannerID) bool {
	if f.banner == nil || f.bannerID != id {
		return false
	}
	node := f.banner
	f.banner = nil
	return detach(node)
}

// Banner returns the current form message's class list and text.
func (f *Form) Banner() (class string, text string, ok bool) {
	node := findFirst(f.node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, ClassFormMessage)
	})
	if node == nil {
		return "", "", false
	}
	return attrOr(node, "class", ""), textContent(node), true
}

// BannerItems returns the list items of an error summary banner.
func (f *Form) BannerItems() []string {
	node := findFirst(f.node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, ClassFormMessage)
	})
	if node == nil {
		return nil
	}
	var items []string
	for _, li := range findAll(node, func(n *html.Node) bool { return isElement(n, atom.Li) }) {
		items = append(items, textContent(li))
	}
	return items
}

// BannerIsFirstChild reports whether the form message is the form's first
// element child.
func (f *Form) BannerIsFirstChild() bool {
	for c := f.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return hasClass(c, ClassFormMessage)
		}
	}
	return false
}

func (f *Form) own(field formvalidator.Field) (*Field, bool) {
	c, ok := field.(*Field)
	if !ok || c == nil || c.form != f {
		return nil, false
	}
	return c, true
}
