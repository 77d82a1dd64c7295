// Package form implements the entity-form workflow shared by every salesdesk
// editor: binding an entity to named fields, validating input field by field,
// saving through a persistence service, and announcing data changes.
//
// The package knows nothing about terminals or widgets. A Field is any passive
// value holder with an error label; the ui and cmd packages supply their own.
//
// Usage:
//
//	fields := form.NewFields(binder.Specs())
//	ctrl := form.NewController(binder, fields, notifier, presenter, host)
//	_ = ctrl.Bind(&models.Department{}, departments)
//	_ = ctrl.Populate()
//	result, err := ctrl.Save(ctx)
package form
