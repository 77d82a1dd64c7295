package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type controllerFixture struct {
	ctrl      *Controller[account]
	fields    Fields
	service   *fakeService
	presenter *recordingPresenter
	host      *recordingHost
	notifier  *Notifier
	published int
	events    []string
}

func newControllerFixture(t *testing.T) *controllerFixture {
	t.Helper()
	fx := &controllerFixture{}
	b := accountBinder()
	fx.fields = accountFields(b)
	fx.service = &fakeService{log: &fx.events}
	fx.presenter = &recordingPresenter{}
	fx.host = &recordingHost{log: &fx.events}
	fx.notifier = NewNotifier(nil)
	fx.notifier.Subscribe(ListenerFunc(func() error {
		fx.published++
		fx.events = append(fx.events, "publish")
		return nil
	}))
	fx.ctrl = NewController(b, fx.fields, fx.notifier, fx.presenter, fx.host)
	return fx
}

func (fx *controllerFixture) open(t *testing.T, entity *account) {
	t.Helper()
	require.NoError(t, fx.ctrl.Bind(entity, fx.service))
	require.NoError(t, fx.ctrl.Populate())
	require.Equal(t, StateDisplaying, fx.ctrl.State())
}

func TestControllerSaveEmptyRequiredNameReportsFieldError(t *testing.T) {
	fx := newControllerFixture(t)
	fx.open(t, &account{})
	setText(fx.fields, "balance", "5")

	result, err := fx.ctrl.Save(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": MsgRequired}, result.Errors())
	assert.Empty(t, fx.service.saved)
	assert.Equal(t, 0, fx.published)
	assert.Equal(t, 0, fx.host.closed)
	assert.Equal(t, StateDisplaying, fx.ctrl.State())
	assert.Equal(t, MsgRequired, fx.fields["name"].ErrorText())
	assert.Equal(t, "", fx.fields["balance"].ErrorText())
}

func TestControllerSaveValidDraftPersistsPublishesThenCloses(t *testing.T) {
	fx := newControllerFixture(t)
	fx.open(t, &account{})
	setText(fx.fields, "name", "Alice")
	setText(fx.fields, "balance", "10.00")

	result, err := fx.ctrl.Save(context.Background())

	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	require.Len(t, fx.service.saved, 1)
	assert.Equal(t, "Alice", fx.service.saved[0].Name)
	assert.Nil(t, fx.service.saved[0].ID)
	assert.Equal(t, []string{"save", "publish", "close"}, fx.events)
	assert.Equal(t, StateClosed, fx.ctrl.State())
	assert.Nil(t, fx.ctrl.Entity(), "entity is not retained after close")
}

func TestControllerSavePersistenceFailureKeepsFormOpen(t *testing.T) {
	fx := newControllerFixture(t)
	fx.service.err = &PersistenceError{Message: "duplicate key", Err: errors.New("UNIQUE constraint failed")}
	fx.open(t, &account{ID: intPtr(3), Name: "Alice", Balance: floatPtr(1)})
	setText(fx.fields, "name", "Alicia")

	result, err := fx.ctrl.Save(context.Background())

	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Equal(t, []string{SaveErrorTitle}, fx.presenter.titles)
	assert.Equal(t, []string{"duplicate key"}, fx.presenter.messages)
	assert.Equal(t, 0, fx.published)
	assert.Equal(t, 0, fx.host.closed)
	assert.Equal(t, StateDisplaying, fx.ctrl.State())
	assert.Equal(t, "Alicia", fx.fields["name"].Value(), "user edits stay visible")
	assert.NotNil(t, fx.ctrl.Entity())
}

func TestControllerSaveRetriesAfterPersistenceFailure(t *testing.T) {
	fx := newControllerFixture(t)
	fx.service.err = errors.New("database is locked")
	fx.open(t, &account{Name: "Alice", Balance: floatPtr(1)})

	_, err := fx.ctrl.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"database is locked"}, fx.presenter.messages)

	fx.service.err = nil
	_, err = fx.ctrl.Save(context.Background())
	require.NoError(t, err)
	assert.Len(t, fx.service.saved, 2)
	assert.Equal(t, StateClosed, fx.ctrl.State())
	assert.Equal(t, 1, fx.published)
}

func TestControllerSaveClearsStaleErrorLabels(t *testing.T) {
	fx := newControllerFixture(t)
	fx.open(t, &account{})

	_, err := fx.ctrl.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MsgRequired, fx.fields["name"].ErrorText())
	assert.Equal(t, MsgRequired, fx.fields["balance"].ErrorText())

	setText(fx.fields, "name", "Alice")
	result, err := fx.ctrl.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"balance"}, result.Keys())
	assert.Equal(t, "", fx.fields["name"].ErrorText())
	assert.Equal(t, MsgRequired, fx.fields["balance"].ErrorText())
}

func TestControllerBindTwiceFails(t *testing.T) {
	fx := newControllerFixture(t)
	require.NoError(t, fx.ctrl.Bind(&account{}, fx.service))

	err := fx.ctrl.Bind(&account{}, fx.service)
	assert.ErrorIs(t, err, ErrInvalidState)

	fx.ctrl.Reset()
	assert.NoError(t, fx.ctrl.Bind(&account{}, fx.service))
}

func TestControllerPopulateWithoutEntityFails(t *testing.T) {
	fx := newControllerFixture(t)

	assert.ErrorIs(t, fx.ctrl.Populate(), ErrInvalidState)

	require.NoError(t, fx.ctrl.Bind(nil, fx.service))
	assert.ErrorIs(t, fx.ctrl.Populate(), ErrInvalidState)
}

func TestControllerSaveContractViolations(t *testing.T) {
	t.Run("unbound", func(t *testing.T) {
		fx := newControllerFixture(t)
		_, err := fx.ctrl.Save(context.Background())
		assert.ErrorIs(t, err, ErrInvalidState)
	})
	t.Run("nil service", func(t *testing.T) {
		fx := newControllerFixture(t)
		require.NoError(t, fx.ctrl.Bind(&account{}, nil))
		require.NoError(t, fx.ctrl.Populate())
		_, err := fx.ctrl.Save(context.Background())
		assert.ErrorIs(t, err, ErrInvalidState)
	})
	t.Run("not displaying", func(t *testing.T) {
		fx := newControllerFixture(t)
		require.NoError(t, fx.ctrl.Bind(&account{}, fx.service))
		_, err := fx.ctrl.Save(context.Background())
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Empty(t, fx.service.saved)
	})
}

func TestControllerPopulateTwiceShowsSameFields(t *testing.T) {
	fx := newControllerFixture(t)
	fx.open(t, &account{ID: intPtr(1), Name: "Ops", Balance: floatPtr(3)})
	first := snapshot(fx.fields)

	require.NoError(t, fx.ctrl.Populate())

	assert.Equal(t, first, snapshot(fx.fields))
	assert.Equal(t, StateDisplaying, fx.ctrl.State())
}

func TestControllerCancelClosesWithoutSaving(t *testing.T) {
	fx := newControllerFixture(t)
	fx.open(t, &account{})

	require.NoError(t, fx.ctrl.Cancel())

	assert.Equal(t, StateClosed, fx.ctrl.State())
	assert.Equal(t, 1, fx.host.closed)
	assert.Empty(t, fx.service.saved)
	assert.Equal(t, "", fx.fields["name"].ErrorText(), "no validation runs")
	assert.ErrorIs(t, fx.ctrl.Cancel(), ErrInvalidState)
}

func TestControllerCancelFromIdle(t *testing.T) {
	fx := newControllerFixture(t)

	require.NoError(t, fx.ctrl.Cancel())
	assert.Equal(t, 1, fx.host.closed)
}

func TestControllerPopulateAfterCloseFails(t *testing.T) {
	fx := newControllerFixture(t)
	fx.open(t, &account{Name: "x"})
	require.NoError(t, fx.ctrl.Cancel())

	assert.ErrorIs(t, fx.ctrl.Populate(), ErrInvalidState)
}

func TestControllerWithoutNotifierOrPresenter(t *testing.T) {
	b := accountBinder()
	fields := accountFields(b)
	svc := &fakeService{err: errors.New("down")}
	ctrl := NewController(b, fields, nil, nil, nil)
	require.NoError(t, ctrl.Bind(&account{Name: "x", Balance: floatPtr(1)}, svc))
	require.NoError(t, ctrl.Populate())

	_, err := ctrl.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateDisplaying, ctrl.State())

	svc.err = nil
	_, err = ctrl.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateClosed, ctrl.State())
	assert.NotEmpty(t, ctrl.ID())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "displaying", StateDisplaying.String())
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "persisting", StatePersisting.String())
	assert.Equal(t, "closed", StateClosed.String())
}
