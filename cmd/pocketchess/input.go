package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/pocketchess/internal/game"
)

// keyInput collects the button events of one loop tick. Terminals report
// key presses only, so the keys the game acts on at release (Confirm and
// Back) are reported as released and the arrows as pressed.
type keyInput struct {
	pressed  map[game.Button]bool
	released map[game.Button]bool
}

var _ game.Input = (*keyInput)(nil)

func newKeyInput() *keyInput {
	return &keyInput{
		pressed:  make(map[game.Button]bool),
		released: make(map[game.Button]bool),
	}
}

func (k *keyInput) WasPressed(b game.Button) bool  { return k.pressed[b] }
func (k *keyInput) WasReleased(b game.Button) bool { return k.released[b] }

func (k *keyInput) reset() {
	for b := range k.pressed {
		delete(k.pressed, b)
	}
	for b := range k.released {
		delete(k.released, b)
	}
}

// hostAction is a key handled by the terminal host instead of the game.
type hostAction int

const (
	noAction hostAction = iota
	undoAction
	resetAction
)

// record maps a key to a game button or a host action.
func (k *keyInput) record(ev *tcell.EventKey) hostAction {
	switch ev.Key() {
	case tcell.KeyUp:
		k.pressed[game.Up] = true
	case tcell.KeyDown:
		k.pressed[game.Down] = true
	case tcell.KeyLeft:
		k.pressed[game.Left] = true
	case tcell.KeyRight:
		k.pressed[game.Right] = true
	case tcell.KeyEnter:
		k.released[game.Confirm] = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.released[game.Back] = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.released[game.Confirm] = true
		case 'q':
			k.released[game.Back] = true
		case 'k':
			k.pressed[game.Up] = true
		case 'j':
			k.pressed[game.Down] = true
		case 'h':
			k.pressed[game.Left] = true
		case 'l':
			k.pressed[game.Right] = true
		case 'u':
			return undoAction
		case 'r':
			return resetAction
		}
	}
	return noAction
}
