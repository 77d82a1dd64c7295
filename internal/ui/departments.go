package ui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/ui/components"
)

// --- Messages ---

type departmentsLoadedMsg struct{ items []models.Department }
type departmentRemovedMsg struct{ id int }

// --- Departments Model ---

type DepartmentsModel struct {
	deps          Deps
	keys          keymap
	items         []models.Department
	list          *components.List
	loading       bool
	confirmDelete bool
	width         int
	height        int
	refresh       *refreshSignal
}

// NewDepartmentsModel creates the department list and subscribes it to data
// changes.
func NewDepartmentsModel(deps Deps) DepartmentsModel {
	refresh := &refreshSignal{}
	if deps.Notifier != nil {
		deps.Notifier.Subscribe(refresh)
	}
	return DepartmentsModel{
		deps:    deps,
		keys:    keymap{vim: deps.VimKeys},
		list:    components.NewList(listPageSize(0)),
		loading: true,
		refresh: refresh,
	}
}

func (m DepartmentsModel) Init() tea.Cmd {
	return m.load()
}

func (m DepartmentsModel) Update(msg tea.Msg) (DepartmentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case departmentsLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.list.SetLen(len(m.items))
		return m, nil
	case departmentRemovedMsg:
		m.deps.logger().Info("department removed", "id", msg.id)
		if m.deps.Notifier != nil {
			m.deps.Notifier.Publish()
		}
		return m, nil
	case tea.KeyMsg:
		if m.confirmDelete {
			return m.handleConfirmKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m DepartmentsModel) handleListKeys(msg tea.KeyMsg) (DepartmentsModel, tea.Cmd) {
	switch {
	case m.keys.down(msg):
		m.list.Down()
	case m.keys.up(msg):
		m.list.Up()
	case isKey(msg, "n"):
		return m, m.openForm(&models.Department{})
	case isEnter(msg):
		if d := m.selected(); d != nil {
			draft := *d
			return m, m.openForm(&draft)
		}
	case isKey(msg, "d", "delete"):
		if m.selected() != nil {
			m.confirmDelete = true
		}
	case isKey(msg, "r"):
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m DepartmentsModel) handleConfirmKeys(msg tea.KeyMsg) (DepartmentsModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		m.confirmDelete = false
		if d := m.selected(); d != nil && d.ID != nil {
			return m, m.remove(*d.ID)
		}
	case isKey(msg, "n"), isBack(msg):
		m.confirmDelete = false
	}
	return m, nil
}

func (m DepartmentsModel) selected() *models.Department {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}
	return &m.items[idx]
}

func (m DepartmentsModel) View() string {
	if m.confirmDelete {
		if d := m.selected(); d != nil {
			body := fmt.Sprintf("Delete department %q?", d.Name)
			return components.Indent(components.ConfirmDialog("Delete department", body), 1)
		}
	}
	if m.loading && len(m.items) == 0 {
		return "  " + HintStyle.Render("Loading departments...")
	}
	if len(m.items) == 0 {
		return components.Box(HintStyle.Render("No departments yet. Press n to add one."), m.width)
	}

	cols := []components.TableColumn{
		{Header: "Id", Width: 5, Align: lipgloss.Right},
		{Header: "Name"},
	}
	start, end := m.list.Window()
	rows := make([][]string, 0, end-start)
	for _, d := range m.items[start:end] {
		rows = append(rows, []string{idText(d.ID), d.Name})
	}
	table := components.TableGrid(cols, rows, tableWidth(m.width), m.list.Cursor-start)
	count := HintStyle.Render(fmt.Sprintf("%d total", len(m.items)))
	return components.TitledBox("Departments", count+"\n\n"+table, m.width)
}

func (m DepartmentsModel) hints() []string {
	if m.confirmDelete {
		return []string{components.Hint("y", "Confirm"), components.Hint("n", "Cancel")}
	}
	return []string{
		components.Hint("n", "New"),
		components.Hint("enter", "Edit"),
		components.Hint("d", "Delete"),
		components.Hint("r", "Reload"),
	}
}

func (m DepartmentsModel) load() tea.Cmd {
	svc := m.deps.Departments
	return func() tea.Msg {
		items, err := svc.FindAll(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return departmentsLoadedMsg{items}
	}
}

func (m DepartmentsModel) remove(id int) tea.Cmd {
	svc := m.deps.Departments
	return func() tea.Msg {
		if err := svc.Remove(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return departmentRemovedMsg{id}
	}
}

func (m DepartmentsModel) openForm(entity *models.Department) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		f, err := deps.departmentForm(entity)
		if err != nil {
			return errMsg{err}
		}
		return openFormMsg{f}
	}
}

func idText(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

func tableWidth(width int) int {
	w := components.BoxContentWidth(width)
	if w <= 0 {
		return 60
	}
	return w
}

func listPageSize(height int) int {
	if size := height - 18; size > 5 {
		return size
	}
	return 5
}
