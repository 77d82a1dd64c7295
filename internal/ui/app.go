package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/salesdesk/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabDepartments = 0
	tabSellers     = 1
	tabCount       = 2
)

var tabNames = []string{"Departments", "Sellers"}

// --- Messages ---

type errMsg struct{ err error }

// openFormMsg carries a populated form from a list screen to the app.
type openFormMsg struct{ form FormModel }

// --- App Model ---

// App is the root TUI model that routes between tabs and the open form.
type App struct {
	deps        Deps
	tab         int
	width       int
	height      int
	err         string
	helpOpen    bool
	quitConfirm bool

	formOpen bool
	form     FormModel

	departments DepartmentsModel
	sellers     SellersModel
}

// NewApp creates the root application model.
func NewApp(deps Deps) App {
	return App{
		deps:        deps,
		tab:         tabDepartments,
		departments: NewDepartmentsModel(deps),
		sellers:     NewSellersModel(deps),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.departments.Init(), a.sellers.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.departments.width = msg.Width
		a.departments.height = msg.Height
		a.departments.list.PageSize = listPageSize(msg.Height)
		a.departments.list.SetLen(len(a.departments.items))
		a.sellers.width = msg.Width
		a.sellers.height = msg.Height
		a.sellers.list.PageSize = listPageSize(msg.Height)
		a.sellers.list.SetLen(len(a.sellers.items))
		a.form.width = msg.Width
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		a.deps.logger().Warn("ui error", "error", msg.err)
		return a, nil

	case openFormMsg:
		a.form = msg.form
		a.form.width = a.width
		a.formOpen = true
		return a, nil

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.formOpen {
			if isKey(msg, "ctrl+c") {
				a.quitConfirm = true
				return a, nil
			}
			var cmd tea.Cmd
			a.form, cmd = a.form.Update(msg)
			if a.form.closed {
				a.formOpen = false
			}
			return a, a.withRefresh(cmd)
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		// Global keys, unless a delete confirmation owns the keyboard.
		if !a.confirming() {
			if isKey(msg, "?") {
				a.helpOpen = true
				return a, nil
			}
			if isQuit(msg) {
				return a, tea.Quit
			}
			if idx, ok := tabIndexForKey(msg.String()); ok {
				a.tab = idx
				return a, nil
			}
			if isKey(msg, "left") {
				a.tab = (a.tab - 1 + tabCount) % tabCount
				return a, nil
			}
			if isKey(msg, "right") {
				a.tab = (a.tab + 1) % tabCount
				return a, nil
			}
		}

		var cmd tea.Cmd
		switch a.tab {
		case tabDepartments:
			a.departments, cmd = a.departments.Update(msg)
		case tabSellers:
			a.sellers, cmd = a.sellers.Update(msg)
		}
		return a, a.withRefresh(cmd)
	}

	// Loaded and removed messages go to both lists; each ignores the other's.
	var deptCmd, sellerCmd tea.Cmd
	a.departments, deptCmd = a.departments.Update(msg)
	a.sellers, sellerCmd = a.sellers.Update(msg)
	return a, a.withRefresh(tea.Batch(deptCmd, sellerCmd))
}

// withRefresh appends a reload for every list whose data changed.
func (a App) withRefresh(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	if a.departments.refresh.take() {
		cmds = append(cmds, a.departments.load())
	}
	if a.sellers.refresh.take() {
		cmds = append(cmds, a.sellers.load())
	}
	return tea.Batch(cmds...)
}

func (a App) confirming() bool {
	switch a.tab {
	case tabDepartments:
		return a.departments.confirmDelete
	case tabSellers:
		return a.sellers.confirmDelete
	}
	return false
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = components.Indent(components.ConfirmDialog("Quit", "The open form has unsaved changes. Quit anyway?"), 1)
	case a.formOpen:
		content = a.form.View()
	case a.helpOpen:
		content = a.renderHelp()
	case a.tab == tabDepartments:
		content = a.departments.View()
	case a.tab == tabSellers:
		content = a.sellers.View()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	}
	return fmt.Sprintf("%s\n%s\n\n%s\n\n\n%s%s", banner, tabs, content, hints, feedback)
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) statusHints() []string {
	switch {
	case a.quitConfirm:
		return []string{components.Hint("y", "Confirm"), components.Hint("n", "Cancel")}
	case a.formOpen:
		return a.form.hints()
	case a.helpOpen:
		return []string{components.Hint("esc", "Back")}
	}
	hints := a.tabHints()
	if !a.confirming() {
		hints = append(hints,
			components.Hint("1-2", "Tabs"),
			components.Hint("?", "Help"),
			components.Hint("q", "Quit"),
		)
	}
	return hints
}

func (a App) tabHints() []string {
	if a.tab == tabSellers {
		return a.sellers.hints()
	}
	return a.departments.hints()
}

func (a App) renderHelp() string {
	hints := a.tabHints()
	lines := make([]string, 0, len(hints)+6)
	lines = append(lines, HintStyle.Render("esc to close"), "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	lines = append(lines, "", HintStyle.Render("In a form: tab moves, ctrl+s saves, esc cancels."))
	return components.Indent(components.TitledBox("Help", strings.Join(lines, "\n"), a.width), 1)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	prefix := strings.Repeat(" ", (width-maxWidth)/2)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
