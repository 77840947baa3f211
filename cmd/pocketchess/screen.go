package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lgbarn/pocketchess/internal/game"
)

// cellSurface draws game pixels on a terminal. Each character cell covers
// scaleX by scaleY pixels; shapes are rounded to the nearest cell edge.
// Filled areas are shown in reverse video.
type cellSurface struct {
	screen tcell.Screen
	scaleX int
	scaleY int
}

var _ game.Surface = (*cellSurface)(nil)

func newCellSurface(screen tcell.Screen, scaleX, scaleY int) *cellSurface {
	return &cellSurface{screen: screen, scaleX: max(scaleX, 1), scaleY: max(scaleY, 1)}
}

// toCell converts a pixel offset to a cell index, rounding to nearest.
func toCell(px, scale int) int {
	if px < 0 {
		return -toCell(-px, scale)
	}
	return (2*px + scale) / (2 * scale)
}

// cellRect returns the half-open cell ranges covered by a pixel rectangle.
func (s *cellSurface) cellRect(x, y, w, h int) (x0, y0, x1, y1 int) {
	return toCell(x, s.scaleX), toCell(y, s.scaleY), toCell(x+w, s.scaleX), toCell(y+h, s.scaleY)
}

func (s *cellSurface) Clear() {
	s.screen.Clear()
}

func (s *cellSurface) FillRect(x, y, w, h int) {
	x0, y0, x1, y1 := s.cellRect(x, y, w, h)
	style := tcell.StyleDefault.Reverse(true)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *cellSurface) DrawRect(x, y, w, h int) {
	x0, y0, x1, y1 := s.cellRect(x, y, w, h)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	right, bottom := x1-1, y1-1
	for col := x0 + 1; col < right; col++ {
		s.border(col, y0, tcell.RuneHLine)
		s.border(col, bottom, tcell.RuneHLine)
	}
	for row := y0 + 1; row < bottom; row++ {
		s.border(x0, row, tcell.RuneVLine)
		s.border(right, row, tcell.RuneVLine)
	}
	s.border(x0, y0, tcell.RuneULCorner)
	s.border(right, y0, tcell.RuneURCorner)
	s.border(x0, bottom, tcell.RuneLLCorner)
	s.border(right, bottom, tcell.RuneLRCorner)
}

// border draws a line character, keeping the cell's current style so
// outlines stay visible on filled areas.
func (s *cellSurface) border(col, row int, r rune) {
	_, _, style, _ := s.screen.GetContent(col, row)
	s.screen.SetContent(col, row, r, nil, style)
}

func (s *cellSurface) DrawText(x, y int, text string, inverted bool) {
	col, row := toCell(x, s.scaleX), toCell(y, s.scaleY)
	for _, r := range text {
		_, _, style, _ := s.screen.GetContent(col, row)
		if inverted {
			_, _, attrs := style.Decompose()
			style = style.Reverse(attrs&tcell.AttrReverse == 0)
		}
		s.screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func (s *cellSurface) DrawCenteredText(y int, text string) {
	width, _ := s.screen.Size()
	col := max((width-runewidth.StringWidth(text))/2, 0)
	row := toCell(y, s.scaleY)
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col += runewidth.RuneWidth(r)
	}
}

func (s *cellSurface) Present() {
	s.screen.Show()
}
