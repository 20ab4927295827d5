package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formcheck/internal/core/styles"
	"github.com/colonyops/formcheck/internal/core/validate"
)

// SelectFormField is a single-select form field wrapping list.Model.
type SelectFormField struct {
	presentation

	list    list.Model
	options []Option
	def     FieldDef
	focused bool
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	style := styles.TextForegroundStyle
	cursor := "  "
	if isSelected {
		style = styles.SelectFieldItemSelectedStyle
		cursor = styles.IconCursor + " "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// NewSelectFormField creates a single-select field from static options.
// defaultVal pre-selects the option with that value if found; otherwise the
// first option is selected.
func NewSelectFormField(def FieldDef, options []Option, defaultVal string) *SelectFormField {
	def.Kind = validate.KindSelect

	items := make([]list.Item, len(options))
	selected := -1
	for i, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		items[i] = selectItem{label: label, index: i}
		if selected < 0 && opt.Value == defaultVal {
			selected = i
		}
	}

	const maxVisible = 6
	height := max(min(len(options), maxVisible), 1)

	l := list.New(items, selectDelegate{}, 40, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	if selected >= 0 {
		l.Select(selected)
	}

	return &SelectFormField{
		list:    l,
		options: options,
		def:     def,
	}
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	return renderField(f.Label(), f.list.View(), f.focused, f.presentation)
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }
func (f *SelectFormField) Name() string  { return f.def.Name }
func (f *SelectFormField) Label() string { return f.def.label() }

func (f *SelectFormField) Rule() validate.Rule {
	return validate.Rule{Kind: validate.KindSelect, Required: f.def.Required}
}

// Value returns the selected option's value.
func (f *SelectFormField) Value() string {
	item := f.list.SelectedItem()
	if item == nil {
		return ""
	}
	if si, ok := item.(selectItem); ok && si.index >= 0 && si.index < len(f.options) {
		return f.options[si.index].Value
	}
	return ""
}

// SetValue selects the first option with the given value. Unknown values are
// ignored.
func (f *SelectFormField) SetValue(value string) {
	for i, opt := range f.options {
		if opt.Value == value {
			f.list.Select(i)
			return
		}
	}
}
