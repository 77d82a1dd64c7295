package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

// keymap carries the user's navigation preference into each screen.
type keymap struct {
	vim bool
}

func (k keymap) up(msg tea.KeyMsg) bool {
	if k.vim && isKey(msg, "k") {
		return true
	}
	return isKey(msg, "up")
}

func (k keymap) down(msg tea.KeyMsg) bool {
	if k.vim && isKey(msg, "j") {
		return true
	}
	return isKey(msg, "down")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isSave(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+s")
}

func isNextField(msg tea.KeyMsg) bool {
	return isKey(msg, "tab", "down", "enter")
}

func isPrevField(msg tea.KeyMsg) bool {
	return isKey(msg, "shift+tab", "up")
}

func isLeft(msg tea.KeyMsg) bool {
	return isKey(msg, "left")
}

func isRight(msg tea.KeyMsg) bool {
	return isKey(msg, "right", " ")
}

func isBackspace(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyBackspace || isKey(msg, "backspace", "ctrl+h")
}

func tabIndexForKey(key string) (int, bool) {
	switch key {
	case "1":
		return tabDepartments, true
	case "2":
		return tabSellers, true
	}
	return 0, false
}
