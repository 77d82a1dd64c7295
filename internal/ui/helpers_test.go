package ui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/logging"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/service"
	"github.com/gravitrone/salesdesk/internal/storage/sqlite"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ui.db"), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := logging.Discard()
	return Deps{
		Departments: service.NewDepartmentService(store, logger),
		Sellers:     service.NewSellerService(store, logger),
		Notifier:    form.NewNotifier(logger),
		Format:      form.DefaultFormat(),
		Logger:      logger,
	}
}

func seedDepartment(t *testing.T, deps Deps, name string) models.Department {
	t.Helper()
	d := models.Department{Name: name}
	require.NoError(t, deps.Departments.SaveOrUpdate(context.Background(), &d))
	return d
}

func seedSeller(t *testing.T, deps Deps, name string, dept *models.Department) models.Seller {
	t.Helper()
	s := models.Seller{
		Name:       name,
		Email:      name + "@gmail.com",
		BirthDate:  models.TimePtr(time.Date(1990, 3, 21, 0, 0, 0, 0, time.Local)),
		BaseSalary: models.FloatPtr(2500),
		Department: dept,
	}
	require.NoError(t, deps.Sellers.SaveOrUpdate(context.Background(), &s))
	return s
}

// startApp builds the app and runs its initial loads.
func startApp(t *testing.T, deps Deps) App {
	t.Helper()
	app := NewApp(deps)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return drain(t, model.(App), app.Init())
}

// drain runs cmd and every command it leads to, feeding each message back
// into the app.
func drain(t *testing.T, app App, cmd tea.Cmd) App {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "command loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil, tea.QuitMsg:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			model, c := app.Update(msg)
			app = model.(App)
			queue = append(queue, c)
		}
	}
	return app
}

func press(t *testing.T, app App, keys ...tea.KeyMsg) App {
	t.Helper()
	for _, k := range keys {
		model, cmd := app.Update(k)
		app = drain(t, model.(App), cmd)
	}
	return app
}

func typeText(t *testing.T, app App, text string) App {
	t.Helper()
	for _, r := range text {
		app = press(t, app, key(string(r)))
	}
	return app
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft      = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight     = tea.KeyMsg{Type: tea.KeyRight}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keySave      = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
)
