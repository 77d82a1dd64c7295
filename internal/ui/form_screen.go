package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/ui/components"
)

// formController is the part of form.Controller the screen drives. It hides
// the entity type so one screen serves every form.
type formController interface {
	Save(ctx context.Context) (*form.ValidationResult, error)
	Cancel() error
	State() form.State
}

// FormModel renders a controller's fields and forwards save and cancel.
type FormModel struct {
	title  string
	ctrl   formController
	specs  []form.FieldSpec
	fields form.Fields
	format form.Format
	host   *formHost
	focus  int
	err    string
	width  int
	closed bool
}

func newFormModel(title string, ctrl formController, specs []form.FieldSpec, fields form.Fields, format form.Format, host *formHost) FormModel {
	m := FormModel{
		title:  title,
		ctrl:   ctrl,
		specs:  specs,
		fields: fields,
		format: format,
		host:   host,
		focus:  -1,
	}
	m.focus = m.step(-1, 1)
	return m
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.host.alerting() {
		m.host.dismiss()
		return m, nil
	}
	m.err = ""

	switch {
	case isBack(key):
		if err := m.ctrl.Cancel(); err != nil {
			m.err = err.Error()
		}
		m.closed = m.host.closed
		return m, nil
	case isSave(key):
		return m.save()
	case isPrevField(key):
		m.focus = m.step(m.focus, -1)
		return m, nil
	case isNextField(key):
		m.focus = m.step(m.focus, 1)
		return m, nil
	}

	if m.focus < 0 {
		return m, nil
	}
	spec := m.specs[m.focus]
	switch f := m.fields[spec.Key].(type) {
	case *form.ChoiceField:
		switch {
		case isLeft(key):
			f.Prev()
		case isRight(key):
			f.Next()
		}
	case *form.TextField:
		switch {
		case isBackspace(key):
			runes := []rune(f.Text())
			if len(runes) > 0 {
				f.Input(string(runes[:len(runes)-1]))
			}
		case key.Type == tea.KeyRunes || key.Type == tea.KeySpace:
			f.Input(f.Text() + string(key.Runes))
		}
	}
	return m, nil
}

func (m FormModel) save() (FormModel, tea.Cmd) {
	if _, err := m.ctrl.Save(context.Background()); err != nil {
		m.err = err.Error()
	}
	m.closed = m.host.closed
	return m, nil
}

// step moves focus by delta, skipping identity fields, and wraps around.
func (m FormModel) step(from, delta int) int {
	n := len(m.specs)
	for i := 1; i <= n; i++ {
		idx := ((from+delta*i)%n + n) % n
		if !m.specs[idx].Identity {
			return idx
		}
	}
	return -1
}

func (m FormModel) View() string {
	if m.host.alerting() {
		return components.Indent(components.AlertDialog(m.host.alertTitle, m.host.alertMessage), 1)
	}

	inner := components.BoxContentWidth(m.width)
	if inner <= 0 {
		inner = 60
	}
	rows := make([]string, 0, len(m.specs))
	for i, spec := range m.specs {
		field := m.fields[spec.Key]
		if field == nil {
			continue
		}
		rows = append(rows, components.FieldRow(spec.Label, m.display(spec, field), field.ErrorText(), i == m.focus, inner))
	}
	body := strings.Join(rows, "\n")
	if m.err != "" {
		body += "\n\n" + FormFailureStyle.Render(m.err)
	}
	return components.Indent(components.TitledBox(m.title, body, m.width), 1)
}

func (m FormModel) display(spec form.FieldSpec, field form.Field) string {
	switch f := field.(type) {
	case *form.ChoiceField:
		if label := f.Label(); label != "" {
			return "< " + label + " >"
		}
		return PlaceholderStyle.Render("(none)")
	case *form.TextField:
		return f.Text()
	}
	return m.format.Display(spec.Kind, field.Value())
}

func (m FormModel) hints() []string {
	if m.host.alerting() {
		return []string{components.Hint("any", "Dismiss")}
	}
	hints := []string{
		components.Hint("ctrl+s", "Save"),
		components.Hint("tab", "Next"),
		components.Hint("esc", "Cancel"),
	}
	if m.focus >= 0 && m.specs[m.focus].Kind == form.KindReference {
		hints = append(hints, components.Hint("←/→", "Choose"))
	}
	return hints
}
