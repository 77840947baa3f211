package main

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/game"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, col, row int) tcell.SimCell {
	t.Helper()
	cells, width, _ := screen.GetContents()
	return cells[row*width+col]
}

func isReverse(c tcell.SimCell) bool {
	_, _, attrs := c.Style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

func rowText(t *testing.T, screen tcell.SimulationScreen, row int) string {
	t.Helper()
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for col := 0; col < width; col++ {
		if runes := cells[row*width+col].Runes; len(runes) > 0 {
			sb.WriteRune(runes[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestToCell(t *testing.T) {
	tests := []struct {
		px, scale, want int
	}{
		{0, 5, 0},
		{2, 5, 0},
		{3, 5, 1},
		{80, 5, 16},
		{84, 5, 17},
		{46, 10, 5},
		{-7, 5, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toCell(tt.px, tt.scale), "toCell(%d, %d)", tt.px, tt.scale)
	}
}

func TestCellSurface(t *testing.T) {
	screen := newScreen(t)
	s := newCellSurface(screen, pixelsPerColumn, pixelsPerRow)

	s.Clear()
	s.FillRect(80, 40, 40, 40)
	s.DrawRect(0, 0, 40, 40)
	s.DrawText(95, 52, "K", false)
	s.DrawText(95, 62, "k", true)
	s.DrawCenteredText(200, "abcd")
	s.Present()

	assert.True(t, isReverse(cellAt(t, screen, 16, 4)), "fill start")
	assert.True(t, isReverse(cellAt(t, screen, 23, 7)), "fill end")
	assert.False(t, isReverse(cellAt(t, screen, 24, 4)))
	assert.False(t, isReverse(cellAt(t, screen, 16, 8)))

	assert.Equal(t, []rune{tcell.RuneULCorner}, cellAt(t, screen, 0, 0).Runes)
	assert.Equal(t, []rune{tcell.RuneURCorner}, cellAt(t, screen, 7, 0).Runes)
	assert.Equal(t, []rune{tcell.RuneLLCorner}, cellAt(t, screen, 0, 3).Runes)
	assert.Equal(t, []rune{tcell.RuneHLine}, cellAt(t, screen, 3, 0).Runes)
	assert.Equal(t, []rune{tcell.RuneVLine}, cellAt(t, screen, 0, 1).Runes)

	king := cellAt(t, screen, 19, 5)
	assert.Equal(t, []rune{'K'}, king.Runes)
	assert.True(t, isReverse(king), "plain text keeps the fill")
	black := cellAt(t, screen, 19, 6)
	assert.Equal(t, []rune{'k'}, black.Runes)
	assert.False(t, isReverse(black), "inverted text flips the fill")

	assert.Equal(t, "abcd", strings.TrimSpace(rowText(t, screen, 20)))
	assert.Equal(t, 38, strings.Index(rowText(t, screen, 20), "abcd"))
}

func TestCellSurface_TinyRectIgnored(t *testing.T) {
	screen := newScreen(t)
	s := newCellSurface(screen, pixelsPerColumn, pixelsPerRow)
	s.Clear()
	s.DrawRect(0, 0, 4, 4)
	s.Present()
	assert.Equal(t, []rune{' '}, cellAt(t, screen, 0, 0).Runes)
}

func TestKeyInput(t *testing.T) {
	tests := []struct {
		name         string
		ev           *tcell.EventKey
		wantPressed  game.Button
		wantReleased game.Button
		wantAction   hostAction
	}{
		{"up arrow", key(tcell.KeyUp), game.Up, -1, noAction},
		{"down arrow", key(tcell.KeyDown), game.Down, -1, noAction},
		{"left arrow", key(tcell.KeyLeft), game.Left, -1, noAction},
		{"right arrow", key(tcell.KeyRight), game.Right, -1, noAction},
		{"vi up", char('k'), game.Up, -1, noAction},
		{"vi right", char('l'), game.Right, -1, noAction},
		{"enter", key(tcell.KeyEnter), -1, game.Confirm, noAction},
		{"space", char(' '), -1, game.Confirm, noAction},
		{"escape", key(tcell.KeyEscape), -1, game.Back, noAction},
		{"q", char('q'), -1, game.Back, noAction},
		{"undo", char('u'), -1, -1, undoAction},
		{"reset", char('r'), -1, -1, resetAction},
		{"other", char('x'), -1, -1, noAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newKeyInput()
			assert.Equal(t, tt.wantAction, in.record(tt.ev))

			for b := game.Back; b <= game.Right; b++ {
				assert.Equal(t, b == tt.wantPressed, in.WasPressed(b), "pressed %s", b)
				assert.Equal(t, b == tt.wantReleased, in.WasReleased(b), "released %s", b)
			}

			in.reset()
			for b := game.Back; b <= game.Right; b++ {
				assert.False(t, in.WasPressed(b) || in.WasReleased(b), "%s after reset", b)
			}
		})
	}
}

func twoPlayerConfig() *config.Config {
	return config.NewConfigBuilder().
		WithAI(false, chess.Black).
		WithLog(io.Discard).
		Build()
}

func TestHost_PlaysAMove(t *testing.T) {
	screen := newScreen(t)
	h, err := newHost(screen, twoPlayerConfig())
	require.NoError(t, err)

	h.draw()
	assert.Contains(t, rowText(t, screen, 1), "White's Turn")

	for _, ev := range []*tcell.EventKey{key(tcell.KeyEnter), key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyEnter)} {
		h.tick(h.handle(ev))
	}

	history := h.game.History()
	require.Len(t, history, 1)
	assert.Equal(t, "e2e4", history[0].String())
	assert.Contains(t, rowText(t, screen, 1), "Black's Turn")

	h.tick(h.handle(char('u')))
	assert.Empty(t, h.game.History())
	assert.Contains(t, rowText(t, screen, 1), "White's Turn")

	h.tick(h.handle(char('u')))
	assert.Empty(t, h.game.History(), "undo with no history is harmless")
}

func TestHost_Run(t *testing.T) {
	screen := newScreen(t)
	h, err := newHost(screen, twoPlayerConfig())
	require.NoError(t, err)

	events := make(chan tcell.Event, 8)
	events <- key(tcell.KeyLeft)
	events <- tcell.NewEventResize(80, 40)
	events <- char('q')
	events <- key(tcell.KeyRight)

	done := make(chan struct{})
	go func() {
		h.run(events, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after q")
	}
	assert.True(t, h.done)
	assert.Equal(t, "d2", h.game.Cursor().String(), "keys after quit are not read")
	assert.Len(t, events, 1)
}

func TestHost_RunEndsWithEventStream(t *testing.T) {
	screen := newScreen(t)
	h, err := newHost(screen, twoPlayerConfig())
	require.NoError(t, err)

	events := make(chan tcell.Event)
	close(events)
	h.run(events, nil)
	assert.False(t, h.done)
}

func TestHost_EngineRepliesOnTick(t *testing.T) {
	screen := newScreen(t)
	cfg := config.NewConfigBuilder().
		WithSearchDepth(1).
		WithThinkDelay(0).
		WithLog(io.Discard).
		Build()
	h, err := newHost(screen, cfg)
	require.NoError(t, err)

	for _, ev := range []*tcell.EventKey{key(tcell.KeyEnter), key(tcell.KeyUp), key(tcell.KeyEnter)} {
		h.tick(h.handle(ev))
	}
	require.True(t, h.game.Thinking())

	h.tick(false)
	assert.False(t, h.game.Thinking())
	assert.Len(t, h.game.History(), 2)
	assert.Contains(t, rowText(t, screen, 1), "White's Turn")
}

func TestApplyFlags(t *testing.T) {
	restore := func(ptr *string, val string) func() {
		old := *ptr
		*ptr = val
		return func() { *ptr = old }
	}

	tests := []struct {
		ai        string
		wantOn    bool
		wantSide  chess.Colour
		wantError bool
	}{
		{"black", true, chess.Black, false},
		{"White", true, chess.White, false},
		{"w", true, chess.White, false},
		{"none", false, chess.Black, false},
		{"purple", false, chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.ai, func(t *testing.T) {
			defer restore(aiSide, tt.ai)()
			cfg := config.NewConfig()
			err := applyFlags(cfg)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOn, cfg.Game.AIEnabled)
			if tt.wantOn {
				assert.Equal(t, tt.wantSide, cfg.Game.AIColour)
			}
			assert.Equal(t, 3, cfg.Search.Depth)
			assert.Equal(t, 500*time.Millisecond, cfg.Game.ThinkDelay)
		})
	}
}
