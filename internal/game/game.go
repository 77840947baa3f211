// Package game runs a chess game between a player and the engine as a
// cooperative turn loop. The host calls Loop once per tick with the
// buttons seen since the last tick and redraws with Render when asked.
package game

import (
	"log"
	"time"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/engine"
	"github.com/lgbarn/pocketchess/internal/errors"
	"github.com/lgbarn/pocketchess/internal/notation"
	"github.com/lgbarn/pocketchess/internal/search"
)

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock used for the thinking delay.
func WithClock(clock Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

// WithOnBack sets the callback run when Back is released.
func WithOnBack(fn func()) Option {
	return func(g *Game) {
		g.onBack = fn
	}
}

// Game owns one board and everything the host needs to draw it.
type Game struct {
	cfg      *config.Config
	searcher *search.Searcher
	logger   *log.Logger
	clock    Clock
	onBack   func()

	start     *chess.Board
	startTurn chess.Colour

	board     *chess.Board
	history   engine.History
	turn      chess.Colour
	status    chess.Status
	cursor    chess.Square
	selection chess.Square

	thinking   bool
	thinkStart time.Time
}

// New creates a game set up at the configured start position. If the
// engine plays the side to move it starts thinking straight away.
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		logger: cfg.Logger("game: ", 2),
		clock:  SystemClock{},
		searcher: search.NewSearcher(
			search.WithPruning(cfg.Search.Pruning),
			search.WithLogger(cfg.Logger("search: ", 2)),
		),
	}
	for _, opt := range opts {
		opt(g)
	}

	fen := cfg.Game.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	if err := g.Load(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Load replaces the game with the position in fen and resets to it. A
// position without a king is accepted; that side is never in check.
func (g *Game) Load(fen string) error {
	board, turn, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return &errors.PositionError{Err: err, FEN: fen}
	}
	g.start = board
	g.startTurn = turn
	g.Reset()
	return nil
}

// Reset returns to the start position and abandons any search in progress.
func (g *Game) Reset() {
	g.board = g.start.Copy()
	g.history.Clear()
	g.turn = g.startTurn
	g.cursor = chess.MustSquare("e2")
	g.selection = chess.NoSquare
	g.thinking = false
	g.classify()
	g.logger.Printf("new game: %s", engine.BoardToFEN(g.board, g.turn))
	g.maybeThink()
}

// Loop handles one tick of input and reports whether the screen needs
// redrawing. While the engine is thinking all input is ignored.
func (g *Game) Loop(in Input) bool {
	if g.thinking {
		return g.think()
	}

	if in.WasReleased(Back) {
		if g.onBack != nil {
			g.onBack()
		}
		return false
	}

	if !g.status.InProgress() {
		return false
	}

	switch {
	case in.WasPressed(Up):
		return g.moveCursor(0, 1)
	case in.WasPressed(Down):
		return g.moveCursor(0, -1)
	case in.WasPressed(Left):
		return g.moveCursor(-1, 0)
	case in.WasPressed(Right):
		return g.moveCursor(1, 0)
	case in.WasReleased(Confirm):
		return g.confirm()
	}
	return false
}

func (g *Game) moveCursor(df, dr int) bool {
	next := g.cursor.Offset(df, dr)
	if !next.Valid() {
		return false
	}
	g.cursor = next
	return true
}

// confirm selects the piece under the cursor, or plays the selected piece
// to the cursor. An illegal target cancels the selection.
func (g *Game) confirm() bool {
	if g.selection == chess.NoSquare {
		if !g.board.Get(g.cursor).Is(g.turn) {
			return false
		}
		g.selection = g.cursor
		return true
	}

	from := g.selection
	g.selection = chess.NoSquare
	move, err := engine.Play(g.board, &g.history, g.turn, from, g.cursor)
	if err != nil {
		g.logger.Printf("rejected: %v", err)
		return true
	}
	g.moved(move)
	return true
}

// think plays the engine's move once the thinking delay has passed.
func (g *Game) think() bool {
	if g.clock.Now().Sub(g.thinkStart) < g.cfg.Game.ThinkDelay {
		return false
	}
	g.thinking = false

	res, err := g.searcher.FindBestMove(g.board, g.turn, g.cfg.Search.Depth)
	if err != nil {
		// Only reachable if the position changed under us; reclassify so
		// the banner reflects the real state.
		g.logger.Printf("search: %v", err)
		g.classify()
		return true
	}
	g.moved(engine.Apply(g.board, &g.history, res.Move.From, res.Move.To))
	return true
}

// moved finishes a ply: hands the turn over, classifies the position for
// the side now to move and wakes the engine if it is its turn.
func (g *Game) moved(move chess.Move) {
	g.logger.Printf("%s plays %s", g.turn, move)
	g.turn = g.turn.Opposite()
	g.classify()
	g.maybeThink()
}

func (g *Game) classify() {
	g.status = engine.Classify(g.board, g.turn)
	if g.status.IsTerminal() {
		g.logger.Printf("%s: %s", g.status, g.Banner())
	}
}

func (g *Game) isEngineTurn() bool {
	return g.cfg.Game.AIEnabled && g.turn == g.cfg.Game.AIColour
}

func (g *Game) maybeThink() {
	if g.status.InProgress() && g.isEngineTurn() {
		g.thinking = true
		g.thinkStart = g.clock.Now()
	}
}

// Undo takes back the player's last move. If the engine has already
// replied, its reply is taken back too so the player is to move again.
// Any search in progress is abandoned.
func (g *Game) Undo() error {
	last, ok := g.history.Last()
	if !ok {
		return errors.WithStack(errors.ErrEmptyHistory)
	}
	g.thinking = false
	g.selection = chess.NoSquare

	plies := 1
	if g.cfg.Game.AIEnabled && last.Piece.Colour == g.cfg.Game.AIColour && g.history.Len() >= 2 {
		plies = 2
	}
	for i := 0; i < plies; i++ {
		move, _ := g.history.Last()
		if err := engine.Undo(g.board, &g.history); err != nil {
			return err
		}
		g.turn = move.Piece.Colour
	}

	g.logger.Printf("took back %d ply, %s to move", plies, g.turn)
	g.classify()
	g.maybeThink()
	return nil
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Cursor returns the square under the cursor.
func (g *Game) Cursor() chess.Square {
	return g.cursor
}

// Selection returns the selected square, or NoSquare.
func (g *Game) Selection() chess.Square {
	return g.selection
}

// Targets returns the squares the selected piece can legally move to.
func (g *Game) Targets() []chess.Square {
	if g.selection == chess.NoSquare {
		return nil
	}
	moves := engine.PieceMoves(g.board, g.selection)
	targets := make([]chess.Square, len(moves))
	for i, m := range moves {
		targets[i] = m.To
	}
	return targets
}

// Status returns the classification for the side to move.
func (g *Game) Status() chess.Status {
	return g.status
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Thinking reports whether the engine owes a move.
func (g *Game) Thinking() bool {
	return g.thinking
}

// History returns the moves played since the start position, oldest first.
func (g *Game) History() []chess.Move {
	return g.history.Moves()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.turn)
}

// MoveList returns the game so far in numbered SAN.
func (g *Game) MoveList() (string, error) {
	return notation.Line(g.start, g.startTurn, g.history.Moves())
}

// Winner returns the side that delivered mate.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.status != chess.Checkmate {
		return chess.White, false
	}
	return g.turn.Opposite(), true
}

// Banner returns the status line shown above the board.
func (g *Game) Banner() string {
	switch g.status {
	case chess.Checkmate:
		winner, _ := g.Winner()
		return winner.String() + " Wins!"
	case chess.Stalemate:
		return "Stalemate!"
	case chess.Check:
		return "Check!"
	default:
		return g.turn.String() + "'s Turn"
	}
}
