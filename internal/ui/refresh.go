package ui

// refreshSignal is a data change listener shared by every copy of a list
// screen. The notifier marks it pending and the app reloads the screen on
// its next pass through Update.
type refreshSignal struct {
	pending bool
}

func (s *refreshSignal) OnDataChanged() error {
	s.pending = true
	return nil
}

// take reports whether a reload is due and clears the flag.
func (s *refreshSignal) take() bool {
	if s == nil || !s.pending {
		return false
	}
	s.pending = false
	return true
}

// formHost is the window and alert surface a form controller talks to.
type formHost struct {
	closed       bool
	alertTitle   string
	alertMessage string
}

func (h *formHost) Close() {
	h.closed = true
}

func (h *formHost) ShowError(title, message string) {
	h.alertTitle = title
	h.alertMessage = message
}

func (h *formHost) alerting() bool {
	return h.alertTitle != ""
}

func (h *formHost) dismiss() {
	h.alertTitle = ""
	h.alertMessage = ""
}
