package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gravitrone/salesdesk/internal/config"
	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/logging"
	"github.com/gravitrone/salesdesk/internal/service"
	"github.com/gravitrone/salesdesk/internal/storage/sqlite"
)

// env is the wiring a headless command runs against.
type env struct {
	cfg         *config.Config
	logger      *slog.Logger
	store       *sqlite.Store
	departments *service.DepartmentService
	sellers     *service.SellerService
}

// openEnv loads the config and opens the database. Logs go to stderr.
func openEnv(stderr io.Writer) (*env, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(stderr, logging.LevelFromString(cfg.LogLevel))

	store, err := sqlite.New(cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		departments: service.NewDepartmentService(store, logger),
		sellers:     service.NewSellerService(store, logger),
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// cliHost stands in for the form window when there is no terminal UI. It
// records the alert the controller raises instead of drawing it.
type cliHost struct {
	closed  bool
	title   string
	message string
}

func (h *cliHost) Close() { h.closed = true }

func (h *cliHost) ShowError(title, message string) {
	h.title = title
	h.message = message
}

// submit saves through ctrl and turns the outcome into an error: the
// validation result when fields were rejected, or the alert when the
// service failed.
func submit[T any](ctx context.Context, ctrl *form.Controller[T], host *cliHost) error {
	result, err := ctrl.Save(ctx)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}
	if host.title != "" {
		return fmt.Errorf("%s: %s", host.title, host.message)
	}
	return nil
}
