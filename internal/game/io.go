package game

import "time"

// Button is a logical input button.
type Button int

const (
	Back Button = iota
	Confirm
	Up
	Down
	Left
	Right
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case Back:
		return "Back"
	case Confirm:
		return "Confirm"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Input reports edge-triggered button events since the previous loop turn.
type Input interface {
	WasPressed(b Button) bool
	WasReleased(b Button) bool
}

// Surface is a monochrome drawing target. Coordinates are in pixels with
// the origin at the top left. Nothing is shown until Present is called.
type Surface interface {
	Clear()
	DrawRect(x, y, w, h int)
	FillRect(x, y, w, h int)
	// DrawText draws text with its top left corner at (x, y). Inverted text
	// is drawn in the background colour, for use on filled areas.
	DrawText(x, y int, text string, inverted bool)
	DrawCenteredText(y int, text string)
	Present()
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}
