// Package app holds the UI state of the visualization as an explicit
// value. Every action takes the current State and returns the next one
// together with the Scene to paint; nothing is kept in package globals.
package app

import (
	"fmt"
	"strconv"

	"circle-sectors/geometry"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

type Phase int

const (
	PhaseInitial Phase = iota
	PhaseCircleDrawn
	PhaseRearranged
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseCircleDrawn:
		return "circle_drawn"
	case PhaseRearranged:
		return "rearranged"
	case PhaseError:
		return "error"
	}
	return "initial"
}

const (
	DEFAULT_COUNT = 16
	MIN_DRAW      = 4
	MIN_REARRANGE = 2
)

// State mirrors the controls: the count textbox, the two action
// buttons and the status line.
type State struct {
	Input            string
	Count            int
	Phase            Phase
	DrawEnabled      bool
	RearrangeEnabled bool
	Status           string
}

// Init sets up the first screen. An unusable input starts at 16.
func Init(input string, cfg geometry.Config) (State, Scene) {
	n, ok := ParseCount(input)
	if !ok || n < MIN_DRAW {
		n = DEFAULT_COUNT
	}
	if n > geometry.MAX_COUNT {
		n = geometry.MAX_COUNT
	}
	st := State{
		Input:       strconv.Itoa(n),
		Count:       n,
		Phase:       PhaseInitial,
		DrawEnabled: true,
		Status:      "Ready.",
	}
	return st, prompt(cfg, `Pick an even slice count (8 or more suggested), then press "Draw circle"`)
}

// ChangeCount handles an edit of the count textbox: the canvas goes back
// to the prompt and only drawing is allowed.
func ChangeCount(st State, input string, cfg geometry.Config) (State, Scene) {
	n := NormalizeDrawCount(input)
	st.Input = strconv.Itoa(n)
	st.Count = n
	st.Phase = PhaseInitial
	st.DrawEnabled = true
	st.RearrangeEnabled = false
	st.Status = fmt.Sprintf(`Slice count changed to %d. Press "Draw circle".`, n)
	return st, prompt(cfg, fmt.Sprintf(`Press "Draw circle" to use n=%d`, n))
}

// Draw divides the circle. On success drawing is disabled until the
// count changes and rearranging is enabled.
func Draw(st State, input string, cfg geometry.Config) (State, Scene) {
	n := NormalizeDrawCount(input)
	st.Input = strconv.Itoa(n)
	st.Count = n

	sl, err := geometry.ComputeSectorLayout(float64(n), cfg)
	if err != nil {
		return failed(st, err, cfg)
	}
	st.Phase = PhaseCircleDrawn
	st.DrawEnabled = false
	st.RearrangeEnabled = true
	st.Status = fmt.Sprintf("Circle divided into %d slices. Press Rearrange to continue.", n)
	if sl.Degraded() {
		st.Status += fmt.Sprintf(" (%d radii could not be placed)", len(sl.Skipped))
	}
	return st, Scene{Kind: SceneSectors, Sectors: sl}
}

// Rearrange lays the sectors out as a parallelogram. An odd count is
// rounded up here, at the entry point; the geometry itself only accepts
// even counts. Both buttons stay enabled after a success.
func Rearrange(st State, input string, cfg geometry.Config) (State, Scene) {
	n, adjusted, err := NormalizeRearrangeCount(input)
	if err != nil {
		return failed(st, err, cfg)
	}
	st.Input = strconv.Itoa(n)
	st.Count = n

	rs, err := geometry.ComputeRearrangedLayout(n, cfg)
	if err != nil {
		return failed(st, err, cfg)
	}
	st.Phase = PhaseRearranged
	st.DrawEnabled = true
	st.RearrangeEnabled = true
	if adjusted {
		st.Status = fmt.Sprintf("Slice count adjusted to even %d. Rearranged.", n)
	} else {
		st.Status = fmt.Sprintf("Rearranged n=%d.", n)
	}
	return st, Scene{Kind: SceneRearranged, Shape: rs}
}

// failed shows the fixed message for err and leaves the controls so the
// user can retry from drawing.
func failed(st State, err error, cfg geometry.Config) (State, Scene) {
	msg, at := errorMessage(err, cfg)
	st.Phase = PhaseError
	st.DrawEnabled = true
	st.RearrangeEnabled = false
	st.Status = msg
	return st, Scene{Kind: SceneError, Message: msg, ErrorKind: geometry.Kind(err), At: at}
}

func errorMessage(err error, cfg geometry.Config) (string, geom.Coord) {
	top := geom.Coord{X: cfg.CanvasWidth / 2, Y: 50}
	switch {
	case errors.Is(err, geometry.ErrInvalidCount):
		return "Error: invalid slice count", top
	case errors.Is(err, geometry.ErrOddCount):
		return "Error: this layout needs an even slice count", top
	case errors.Is(err, geometry.ErrCountTooSmall):
		return "Error: the slice count must be at least 2", top
	case errors.Is(err, geometry.ErrShapeTooLarge):
		return "Error: the shape is too large to display", geom.Coord{X: cfg.CanvasWidth / 2, Y: cfg.CanvasHeight/2 - 10}
	}
	return "Error: could not draw the figure", geom.Coord{X: cfg.CanvasWidth / 2, Y: cfg.CanvasHeight / 2}
}

func prompt(cfg geometry.Config, msg string) Scene {
	return Scene{
		Kind:    ScenePrompt,
		Message: msg,
		At:      geom.Coord{X: cfg.CanvasWidth / 2, Y: cfg.CanvasHeight / 3},
	}
}
