package ui

import (
	"log/slog"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/schema"
	"github.com/gravitrone/salesdesk/internal/service"
)

// Deps is everything the screens need from the outside world.
type Deps struct {
	Departments *service.DepartmentService
	Sellers     *service.SellerService
	Notifier    *form.Notifier
	Format      form.Format
	Logger      *slog.Logger
	VimKeys     bool
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// departmentForm opens entity in a fresh department form. A nil ID means a
// new record.
func (d Deps) departmentForm(entity *models.Department) (FormModel, error) {
	binder := schema.Department(d.Format)
	fields := form.NewFields(binder.Specs())
	host := &formHost{}
	ctrl := form.NewController(binder, fields, d.Notifier, host, host, form.WithLogger(d.logger()))
	if err := ctrl.Bind(entity, d.Departments); err != nil {
		return FormModel{}, err
	}
	if err := ctrl.Populate(); err != nil {
		return FormModel{}, err
	}
	title := "New department"
	if entity.ID != nil {
		title = "Edit department"
	}
	return newFormModel(title, ctrl, binder.Specs(), fields, d.Format, host), nil
}

// sellerForm opens entity in a seller form whose department choice lists
// departments.
func (d Deps) sellerForm(entity *models.Seller, departments []models.Department) (FormModel, error) {
	binder := schema.Seller(d.Format)
	fields := schema.SellerFields(binder, departments)
	host := &formHost{}
	ctrl := form.NewController(binder, fields, d.Notifier, host, host, form.WithLogger(d.logger()))
	if err := ctrl.Bind(entity, d.Sellers); err != nil {
		return FormModel{}, err
	}
	if err := ctrl.Populate(); err != nil {
		return FormModel{}, err
	}
	title := "New seller"
	if entity.ID != nil {
		title = "Edit seller"
	}
	return newFormModel(title, ctrl, binder.Specs(), fields, d.Format, host), nil
}
