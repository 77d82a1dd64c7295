package form

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// State is the controller's position in the edit lifecycle.
type State int

const (
	StateIdle State = iota
	StateDisplaying
	StateValidating
	StatePersisting
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDisplaying:
		return "displaying"
	case StateValidating:
		return "validating"
	case StatePersisting:
		return "persisting"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// SaveErrorTitle is the title passed to the presenter on a persistence failure.
const SaveErrorTitle = "Error saving object"

// Service persists entities of type T.
type Service[T any] interface {
	SaveOrUpdate(ctx context.Context, entity *T) error
}

// Presenter shows a consolidated error that is not tied to a field.
type Presenter interface {
	ShowError(title, message string)
}

// Host owns the window or screen the form is displayed in.
type Host interface {
	Close()
}

// ControllerOption configures a Controller.
type ControllerOption func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Controller drives one form editing one entity at a time. It is not safe
// for concurrent use; all calls belong to the goroutine that owns the form.
type Controller[T any] struct {
	id        string
	binder    *Binder[T]
	fields    Fields
	notifier  *Notifier
	presenter Presenter
	host      Host
	logger    *slog.Logger

	entity  *T
	service Service[T]
	bound   bool
	state   State
}

// NewController wires a controller to its binder, fields and collaborators.
// notifier may be nil when nothing listens for changes.
func NewController[T any](binder *Binder[T], fields Fields, notifier *Notifier, presenter Presenter, host Host, opts ...ControllerOption) *Controller[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.NewString()
	return &Controller[T]{
		id:        id,
		binder:    binder,
		fields:    fields,
		notifier:  notifier,
		presenter: presenter,
		host:      host,
		logger:    o.logger.With("form_id", id),
		state:     StateIdle,
	}
}

// ID identifies the controller in logs.
func (c *Controller[T]) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Controller[T]) State() State { return c.state }

// Entity returns the bound entity, or nil after a successful save.
func (c *Controller[T]) Entity() *T { return c.entity }

// Fields returns the field set the controller reads and writes.
func (c *Controller[T]) Fields() Fields { return c.fields }

// Bind injects the entity to edit and the service that saves it. Binding
// twice without Reset fails. Nil arguments are accepted here and rejected by
// Populate or Save.
func (c *Controller[T]) Bind(entity *T, service Service[T]) error {
	if c.bound {
		return invalidState("form already bound")
	}
	c.entity = entity
	c.service = service
	c.bound = true
	c.state = StateIdle
	return nil
}

// Reset forgets the bound entity and service and returns to Idle.
func (c *Controller[T]) Reset() {
	c.entity = nil
	c.service = nil
	c.bound = false
	c.state = StateIdle
}

// Populate shows the bound entity in the fields. Calling it again redisplays
// the same entity.
func (c *Controller[T]) Populate() error {
	if c.entity == nil {
		return invalidState("populate without an entity")
	}
	if c.state == StateClosed {
		return invalidState("populate on a closed form")
	}
	c.binder.Populate(c.entity, c.fields)
	c.state = StateDisplaying
	return nil
}

// Save validates the fields and, when they are valid, persists the draft.
//
// Validation failures are written to the field error labels and returned in
// the result. Persistence failures go to the presenter and leave the form
// displaying the user's input. In both cases the returned error is nil; a
// non-nil error always wraps ErrInvalidState.
func (c *Controller[T]) Save(ctx context.Context) (*ValidationResult, error) {
	if c.entity == nil {
		return nil, invalidState("save without an entity")
	}
	if c.service == nil {
		return nil, invalidState("save without a service")
	}
	if c.state != StateDisplaying {
		return nil, invalidState("save while %s", c.state)
	}

	c.state = StateValidating
	draft, result := c.binder.Extract(c.fields)
	c.showErrors(result)
	if result.HasErrors() {
		c.logger.Debug("form validation failed", "fields", result.Keys())
		c.state = StateDisplaying
		return result, nil
	}

	c.state = StatePersisting
	if err := c.service.SaveOrUpdate(ctx, draft); err != nil {
		c.logger.Warn("form save failed", "error", err)
		c.state = StateDisplaying
		if c.presenter != nil {
			c.presenter.ShowError(SaveErrorTitle, PersistenceMessage(err))
		}
		return result, nil
	}

	c.logger.Info("form saved")
	if c.notifier != nil {
		c.notifier.Publish()
	}
	c.entity = nil
	c.state = StateClosed
	if c.host != nil {
		c.host.Close()
	}
	return result, nil
}

// Cancel closes the form without validating or saving.
func (c *Controller[T]) Cancel() error {
	if c.state == StateClosed {
		return invalidState("cancel on a closed form")
	}
	c.state = StateClosed
	if c.host != nil {
		c.host.Close()
	}
	return nil
}

func (c *Controller[T]) showErrors(result *ValidationResult) {
	for _, spec := range c.binder.Specs() {
		field, ok := c.fields[spec.Key]
		if !ok || field == nil {
			continue
		}
		msg, _ := result.ErrorFor(spec.Key)
		field.SetErrorText(msg)
	}
}
