package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/colonyops/formcheck/internal/core/config"
)

// RequiredMarker is appended to the label of required fields.
const RequiredMarker = " *"

// Build generates a sign-up page for the configured form.
func Build(form config.Form) *Document {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlNode := element(atom.Html, html.Attribute{Key: "lang", Val: "en"})
	root.AppendChild(htmlNode)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(textElement(atom.Title, form.Title))
	head.AppendChild(element(atom.Link,
		html.Attribute{Key: "rel", Val: "stylesheet"},
		html.Attribute{Key: "href", Val: "styles.css"},
	))
	htmlNode.AppendChild(head)

	body := element(atom.Body)
	htmlNode.AppendChild(body)

	content := element(atom.Main, html.Attribute{Key: "class", Val: "container"})
	body.AppendChild(content)
	if form.Title != "" {
		content.AppendChild(textElement(atom.H1, form.Title))
	}

	formNode := element(atom.Form,
		html.Attribute{Key: "id", Val: form.ID},
		html.Attribute{Key: "novalidate"},
	)
	content.AppendChild(formNode)

	for _, f := range form.Fields {
		formNode.AppendChild(buildGroup(f))
	}

	formNode.AppendChild(textElement(atom.Button, form.SubmitLabel,
		html.Attribute{Key: "type", Val: "submit"},
	))

	return newDocument(root)
}

func buildGroup(f config.FormField) *html.Node {
	group := element(atom.Div, html.Attribute{Key: "class", Val: "form-group"})

	label := f.Label
	if label == "" {
		label = f.Name
	}
	if f.Required {
		label += RequiredMarker
	}
	group.AppendChild(textElement(atom.Label, label, html.Attribute{Key: "for", Val: f.Name}))

	var control *html.Node
	if f.Type == config.FieldTypeSelect {
		control = element(atom.Select,
			html.Attribute{Key: "id", Val: f.Name},
			html.Attribute{Key: "name", Val: f.Name},
		)
		for _, opt := range f.Options {
			control.AppendChild(textElement(atom.Option, opt.Label,
				html.Attribute{Key: "value", Val: opt.Value},
			))
		}
	} else {
		control = element(atom.Input,
			html.Attribute{Key: "type", Val: string(f.Type)},
			html.Attribute{Key: "id", Val: f.Name},
			html.Attribute{Key: "name", Val: f.Name},
		)
		if f.Placeholder != "" {
			setAttr(control, "placeholder", f.Placeholder)
		}
	}
	if f.Required {
		setAttr(control, "required", "")
	}

	group.AppendChild(control)
	return group
}
