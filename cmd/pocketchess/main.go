// pocketchess plays chess against a small minimax engine in the terminal.
//
// Arrow keys (or h j k l) move the cursor, Enter or Space selects a piece
// and then its destination, u takes back a move, r starts over and Esc or q
// quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/game"
)

const programVersion = "0.1.0"

// Each terminal cell stands for this many layout pixels.
const (
	pixelsPerColumn = 5
	pixelsPerRow    = 10
)

const tickInterval = 50 * time.Millisecond

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pocketchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
		os.Exit(1)
	}

	h, err := newHost(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	h.run(events, ticker.C)
	ticker.Stop()
	screen.Fini()

	if moves, err := h.game.MoveList(); err == nil && moves != "" {
		fmt.Println(moves)
	}
}

// setupLogFile sends diagnostics to the -l file. Without one they are
// discarded, since the terminal belongs to the board.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		cfg.LogFile = io.Discard
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// host connects a Game to a tcell screen.
type host struct {
	screen  tcell.Screen
	game    *game.Game
	surface *cellSurface
	input   *keyInput
	layout  game.Layout
	logger  *log.Logger
	done    bool
}

func newHost(screen tcell.Screen, cfg *config.Config, opts ...game.Option) (*host, error) {
	h := &host{
		screen:  screen,
		surface: newCellSurface(screen, pixelsPerColumn, pixelsPerRow),
		input:   newKeyInput(),
		layout:  game.DefaultLayout,
		logger:  cfg.Logger("host: ", 1),
	}
	opts = append([]game.Option{game.WithOnBack(func() { h.done = true })}, opts...)
	g, err := game.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	h.game = g
	return h, nil
}

// run draws the board and then feeds events and ticks to the game until
// Back is pressed or the event stream ends.
func (h *host) run(events <-chan tcell.Event, ticks <-chan time.Time) {
	h.draw()
	for !h.done {
		redraw := false
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			redraw = h.handle(ev)
		case <-ticks:
		}
		h.tick(redraw)
	}
}

// handle records one terminal event and reports whether the screen must
// be redrawn regardless of what the game does.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		return true
	case *tcell.EventKey:
		switch h.input.record(ev) {
		case undoAction:
			if err := h.game.Undo(); err != nil {
				h.logger.Printf("undo: %v", err)
			}
			return true
		case resetAction:
			h.game.Reset()
			return true
		}
	}
	return false
}

// tick runs one turn of the game loop with the input gathered since the
// previous tick.
func (h *host) tick(redraw bool) {
	if h.game.Loop(h.input) || redraw {
		h.draw()
	}
	h.input.reset()
}

func (h *host) draw() {
	h.game.Render(h.surface, h.layout)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pocketchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against the engine in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Keys:\n")
	fmt.Fprintf(os.Stderr, "  arrows, h j k l  move the cursor\n")
	fmt.Fprintf(os.Stderr, "  Enter, Space     select a piece, then its destination\n")
	fmt.Fprintf(os.Stderr, "  u                take back a move\n")
	fmt.Fprintf(os.Stderr, "  r                new game\n")
	fmt.Fprintf(os.Stderr, "  Esc, q           quit\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
