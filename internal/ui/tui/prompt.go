package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

type promptAction int

const (
	promptEditing promptAction = iota
	promptSubmit
	promptCancel
)

// pathPrompt is the one-line editor used to choose where a view is saved.
// The buffer is edited in runes so the cursor never splits a character.
type pathPrompt struct {
	open bool
	buf  []rune
	pos  int
}

func (p *pathPrompt) start(initial string) {
	p.open = true
	p.buf = []rune(initial)
	p.pos = len(p.buf)
}

func (p *pathPrompt) close() {
	p.open = false
	p.buf = nil
	p.pos = 0
}

func (p *pathPrompt) value() string { return string(p.buf) }

// key applies one keystroke and reports whether it submitted or dismissed
// the prompt.
func (p *pathPrompt) key(msg tea.KeyMsg) promptAction {
	switch msg.Type {
	case tea.KeyEnter:
		return promptSubmit
	case tea.KeyEscape, tea.KeyCtrlC:
		return promptCancel
	case tea.KeyBackspace:
		if p.pos > 0 {
			p.buf = slices.Delete(p.buf, p.pos-1, p.pos)
			p.pos--
		}
	case tea.KeyDelete:
		if p.pos < len(p.buf) {
			p.buf = slices.Delete(p.buf, p.pos, p.pos+1)
		}
	case tea.KeyLeft:
		p.pos = max(p.pos-1, 0)
	case tea.KeyRight:
		p.pos = min(p.pos+1, len(p.buf))
	case tea.KeyHome, tea.KeyCtrlA:
		p.pos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		p.pos = len(p.buf)
	case tea.KeyCtrlU:
		p.buf = slices.Delete(p.buf, 0, p.pos)
		p.pos = 0
	case tea.KeySpace:
		p.insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			p.insert(r)
		}
	}
	return promptEditing
}

func (p *pathPrompt) insert(r rune) {
	p.buf = slices.Insert(p.buf, p.pos, r)
	p.pos++
}

func (p *pathPrompt) view() string {
	head, tail := string(p.buf[:p.pos]), string(p.buf[p.pos:])
	return styleSavePrompt.Render("save view to ") +
		styleSaveInput.Render(head) +
		styleSaveInput.Render("█") +
		styleSaveInput.Render(tail)
}
