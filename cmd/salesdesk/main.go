package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/salesdesk/internal/cmd"
	"github.com/gravitrone/salesdesk/internal/config"
	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/logging"
	"github.com/gravitrone/salesdesk/internal/service"
	"github.com/gravitrone/salesdesk/internal/storage/sqlite"
	"github.com/gravitrone/salesdesk/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "salesdesk",
		Short: "salesdesk - departments and sellers",
		Long:  "salesdesk: keep departments and their sellers in a local database, from a terminal UI or the command line.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.InitCmd())
	root.AddCommand(cmd.DepartmentCmd())
	root.AddCommand(cmd.SellerCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("salesdesk needs a terminal; use the department and seller commands instead")
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Open(cfg.LogFile, logging.LevelFromString(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, err := sqlite.New(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	app := ui.NewApp(ui.Deps{
		Departments: service.NewDepartmentService(store, logger),
		Sellers:     service.NewSellerService(store, logger),
		Notifier:    form.NewNotifier(logger),
		Format:      cfg.Format(),
		Logger:      logger,
		VimKeys:     cfg.VimKeys,
	})

	logger.Info("tui started", "db", cfg.DBPath)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
