package game

import "github.com/lgbarn/pocketchess/internal/chess"

// Layout places the board on a Surface, in pixels.
type Layout struct {
	CellSize int
	OriginX  int
	OriginY  int
	BannerY  int
}

// DefaultLayout fits a 480 pixel wide screen.
var DefaultLayout = Layout{
	CellSize: 40,
	OriginX:  80,
	OriginY:  40,
	BannerY:  10,
}

// ButtonHints is drawn under the board.
const ButtonHints = "Back  Select  Move  Move"

// Render draws the banner, the board with cursor, selection and the
// selected piece's targets, and the pieces, then presents the surface.
// Rank 8 is at the top.
func (g *Game) Render(s Surface, l Layout) {
	s.Clear()
	s.DrawCenteredText(l.BannerY, g.Banner())

	targets := make(map[chess.Square]bool)
	for _, sq := range g.Targets() {
		targets[sq] = true
	}

	cell := l.CellSize
	for row := 0; row < chess.BoardSize; row++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, chess.BoardSize-1-row)
			x := l.OriginX + file*cell
			y := l.OriginY + row*cell

			dark := (file+row)%2 == 1
			if dark {
				s.FillRect(x, y, cell, cell)
			} else {
				s.DrawRect(x, y, cell, cell)
			}

			if sq == g.cursor {
				s.DrawRect(x+2, y+2, cell-4, cell-4)
				s.DrawRect(x+4, y+4, cell-8, cell-8)
			}
			if sq == g.selection {
				s.FillRect(x+6, y+6, cell-12, cell-12)
			}
			if targets[sq] {
				s.FillRect(x+cell/2-4, y+cell/2-4, 8, 8)
			}

			if p := g.board.Get(sq); !p.IsEmpty() {
				s.DrawText(x+cell/2-5, y+cell/2-8, string(p.Letter()), (p.Colour == chess.White) != dark)
			}
		}
	}

	s.DrawCenteredText(l.OriginY+chess.BoardSize*cell+l.BannerY, ButtonHints)
	s.Present()
}
