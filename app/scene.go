package app

import (
	"circle-sectors/geometry"
	"circle-sectors/render"

	"github.com/jbeda/geom"
)

type SceneKind int

const (
	SceneBlank SceneKind = iota
	ScenePrompt
	SceneSectors
	SceneRearranged
	SceneError
)

func (k SceneKind) String() string {
	switch k {
	case ScenePrompt:
		return "prompt"
	case SceneSectors:
		return "sectors"
	case SceneRearranged:
		return "rearranged"
	case SceneError:
		return "error"
	}
	return "blank"
}

// Scene is what the canvas should show after an action.
type Scene struct {
	Kind    SceneKind
	Sectors geometry.SectorLayout
	Shape   geometry.RearrangedShape
	Message string
	// ErrorKind is the geometry.Kind of the failure behind an error scene.
	ErrorKind string
	// At is where Message is printed.
	At geom.Coord
}

// Paint clears s and draws the scene on it.
func (sc Scene) Paint(s render.Surface) {
	s.Clear()
	switch sc.Kind {
	case ScenePrompt:
		render.PaintMessage(s, sc.Message, sc.At, render.TEXT_SIZE, render.ColorText)
	case SceneSectors:
		render.PaintSectors(s, sc.Sectors)
	case SceneRearranged:
		render.PaintRearranged(s, sc.Shape)
	case SceneError:
		render.PaintMessage(s, sc.Message, sc.At, render.ERROR_TEXT_SIZE, render.ColorError)
	}
}
