package form

import (
	"context"
	"time"
)

type owner struct {
	ID   int
	Name string
}

type account struct {
	ID      *int
	Name    string
	Balance *float64
	Opened  *time.Time
	Owner   *owner
}

var zeroBalance = 0.0

func accountBinder() *Binder[account] {
	format := DefaultFormat()
	format.Location = time.UTC
	return NewBinder(format,
		Binding[account]{
			Spec: FieldSpec{Key: "id", Kind: KindInteger, Identity: true},
			Get: func(a *account) any {
				if a.ID == nil {
					return nil
				}
				return *a.ID
			},
			Set: func(a *account, v any) {
				n := v.(int)
				a.ID = &n
			},
		},
		Binding[account]{
			Spec: FieldSpec{Key: "name", Kind: KindText, Required: true, MaxLen: 10},
			Get: func(a *account) any {
				if a.Name == "" {
					return nil
				}
				return a.Name
			},
			Set: func(a *account, v any) { a.Name = v.(string) },
		},
		Binding[account]{
			Spec: FieldSpec{Key: "balance", Kind: KindDecimal, Required: true, Min: &zeroBalance},
			Get: func(a *account) any {
				if a.Balance == nil {
					return nil
				}
				return *a.Balance
			},
			Set: func(a *account, v any) {
				x := v.(float64)
				a.Balance = &x
			},
		},
		Binding[account]{
			Spec: FieldSpec{Key: "opened", Kind: KindDate},
			Get: func(a *account) any {
				if a.Opened == nil {
					return nil
				}
				return *a.Opened
			},
			Set: func(a *account, v any) {
				t := v.(time.Time)
				a.Opened = &t
			},
		},
		Binding[account]{
			Spec: FieldSpec{Key: "owner", Kind: KindReference},
			Get: func(a *account) any {
				if a.Owner == nil {
					return nil
				}
				return a.Owner
			},
			Set: func(a *account, v any) { a.Owner = v.(*owner) },
		},
	)
}

func sameOwner(a, b any) bool {
	oa, _ := a.(*owner)
	ob, _ := b.(*owner)
	if oa == nil || ob == nil {
		return oa == ob
	}
	return oa.ID == ob.ID
}

func accountFields(b *Binder[account], owners ...*owner) Fields {
	fields := NewFields(b.Specs())
	choice := fields["owner"].(*ChoiceField)
	choice.SetEqual(sameOwner)
	opts := make([]Option, 0, len(owners))
	for _, o := range owners {
		opts = append(opts, Option{Label: o.Name, Value: o})
	}
	choice.SetOptions(opts)
	return fields
}

func setText(fields Fields, key, text string) {
	fields[key].SetValue(text)
}

type fakeService struct {
	err   error
	saved []*account
	log   *[]string
}

func (s *fakeService) SaveOrUpdate(_ context.Context, a *account) error {
	if s.log != nil {
		*s.log = append(*s.log, "save")
	}
	s.saved = append(s.saved, a)
	return s.err
}

type recordingPresenter struct {
	titles   []string
	messages []string
}

func (p *recordingPresenter) ShowError(title, message string) {
	p.titles = append(p.titles, title)
	p.messages = append(p.messages, message)
}

type recordingHost struct {
	closed int
	log    *[]string
}

func (h *recordingHost) Close() {
	h.closed++
	if h.log != nil {
		*h.log = append(*h.log, "close")
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
