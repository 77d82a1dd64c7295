package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/ui/components"
)

// --- Messages ---

type sellersLoadedMsg struct{ items []models.Seller }
type sellerRemovedMsg struct{ id int }

// --- Sellers Model ---

type SellersModel struct {
	deps          Deps
	keys          keymap
	items         []models.Seller
	list          *components.List
	loading       bool
	confirmDelete bool
	width         int
	height        int
	refresh       *refreshSignal
}

// NewSellersModel creates the seller list and subscribes it to data changes.
func NewSellersModel(deps Deps) SellersModel {
	refresh := &refreshSignal{}
	if deps.Notifier != nil {
		deps.Notifier.Subscribe(refresh)
	}
	return SellersModel{
		deps:    deps,
		keys:    keymap{vim: deps.VimKeys},
		list:    components.NewList(listPageSize(0)),
		loading: true,
		refresh: refresh,
	}
}

func (m SellersModel) Init() tea.Cmd {
	return m.load()
}

func (m SellersModel) Update(msg tea.Msg) (SellersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sellersLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.list.SetLen(len(m.items))
		return m, nil
	case sellerRemovedMsg:
		m.deps.logger().Info("seller removed", "id", msg.id)
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

func (m SellersModel) handleListKeys(msg tea.KeyMsg) (SellersModel, tea.Cmd) {
	switch {
	case m.keys.down(msg):
		m.list.Down()
	case m.keys.up(msg):
		m.list.Up()
	case isKey(msg, "n"):
		return m, m.openForm(&models.Seller{})
	case isEnter(msg):
		if s := m.selected(); s != nil {
			draft := *s
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

func (m SellersModel) handleConfirmKeys(msg tea.KeyMsg) (SellersModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		m.confirmDelete = false
		if s := m.selected(); s != nil && s.ID != nil {
			return m, m.remove(*s.ID)
		}
	case isKey(msg, "n"), isBack(msg):
		m.confirmDelete = false
	}
	return m, nil
}

func (m SellersModel) selected() *models.Seller {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}
	return &m.items[idx]
}

func (m SellersModel) View() string {
	if m.confirmDelete {
		if s := m.selected(); s != nil {
			body := fmt.Sprintf("Delete seller %q?", s.Name)
			return components.Indent(components.ConfirmDialog("Delete seller", body), 1)
		}
	}
	if m.loading && len(m.items) == 0 {
		return "  " + HintStyle.Render("Loading sellers...")
	}
	if len(m.items) == 0 {
		return components.Box(HintStyle.Render("No sellers yet. Press n to add one."), m.width)
	}

	format := m.deps.Format
	cols := []components.TableColumn{
		{Header: "Id", Width: 5, Align: lipgloss.Right},
		{Header: "Name"},
		{Header: "Email"},
		{Header: "Birth date", Width: 10},
		{Header: "Base salary", Width: 11, Align: lipgloss.Right},
		{Header: "Department"},
	}
	start, end := m.list.Window()
	rows := make([][]string, 0, end-start)
	for _, s := range m.items[start:end] {
		var birth, salary any
		if s.BirthDate != nil {
			birth = *s.BirthDate
		}
		if s.BaseSalary != nil {
			salary = *s.BaseSalary
		}
		rows = append(rows, []string{
			idText(s.ID),
			s.Name,
			s.Email,
			format.Display(form.KindDate, birth),
			format.Display(form.KindDecimal, salary),
			s.Department.Label(),
		})
	}
	table := components.TableGrid(cols, rows, tableWidth(m.width), m.list.Cursor-start)
	count := HintStyle.Render(fmt.Sprintf("%d total", len(m.items)))
	return components.TitledBox("Sellers", count+"\n\n"+table, m.width)
}

func (m SellersModel) hints() []string {
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

func (m SellersModel) load() tea.Cmd {
	svc := m.deps.Sellers
	return func() tea.Msg {
		items, err := svc.FindAll(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return sellersLoadedMsg{items}
	}
}

func (m SellersModel) remove(id int) tea.Cmd {
	svc := m.deps.Sellers
	return func() tea.Msg {
		if err := svc.Remove(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return sellerRemovedMsg{id}
	}
}

// openForm loads the department choices before the form is built, so the
// seller's department can be matched against them.
func (m SellersModel) openForm(entity *models.Seller) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		departments, err := deps.Departments.FindAll(context.Background())
		if err != nil {
			return errMsg{err}
		}
		f, err := deps.sellerForm(entity, departments)
		if err != nil {
			return errMsg{err}
		}
		return openFormMsg{f}
	}
}
