package server

import (
	"circle-sectors/app"
	"circle-sectors/geometry"

	"github.com/jbeda/geom"
)

// ---------- JSON response types ----------

type coordJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type segmentJSON struct {
	From coordJSON `json:"from"`
	To   coordJSON `json:"to"`
}

type arcJSON struct {
	Start   coordJSON `json:"start"`
	Control coordJSON `json:"control"`
	End     coordJSON `json:"end"`
}

type radiusJSON struct {
	Index int     `json:"index"`
	Angle float64 `json:"angle"`
	segmentJSON
}

type circleJSON struct {
	Center coordJSON `json:"center"`
	Radius float64   `json:"radius"`
}

type sectorLayoutJSON struct {
	Count         int          `json:"count"`
	AngleStep     float64      `json:"angleStep"`
	Circumference circleJSON   `json:"circumference"`
	Radii         []radiusJSON `json:"radii"`
	Skipped       []int        `json:"skipped"`
	Degraded      bool         `json:"degraded"`
}

type sectorJSON struct {
	Index     int         `json:"index"`
	BaseLeft  coordJSON   `json:"baseLeft"`
	BaseRight coordJSON   `json:"baseRight"`
	Tip       coordJSON   `json:"tip"`
	LeftEdge  segmentJSON `json:"leftEdge"`
	RightEdge segmentJSON `json:"rightEdge"`
	Top       arcJSON     `json:"top"`
	Bottom    arcJSON     `json:"bottom"`
}

type boundsJSON struct {
	Min coordJSON `json:"min"`
	Max coordJSON `json:"max"`
}

type captionJSON struct {
	Anchor  coordJSON `json:"anchor"`
	Size    float64   `json:"size"`
	Lines   []string  `json:"lines"`
	Compact bool      `json:"compact"`
}

type areaJSON struct {
	ApproxBase   float64 `json:"approxBase"`
	ApproxHeight float64 `json:"approxHeight"`
	ApproxArea   float64 `json:"approxArea"`
	ActualArea   float64 `json:"actualArea"`
	OutlineArea  float64 `json:"outlineArea"`
}

type rearrangedJSON struct {
	N               int          `json:"n"`
	ArcLength       float64      `json:"arcLength"`
	NumSectors      int          `json:"numSectors"`
	TotalBaseLength float64      `json:"totalBaseLength"`
	ShapeHeight     float64      `json:"shapeHeight"`
	ShiftX          float64      `json:"shiftX"`
	VisualWidth     float64      `json:"visualWidth"`
	StartX          float64      `json:"startX"`
	TopBaseY        float64      `json:"topBaseY"`
	TipY            float64      `json:"tipY"`
	CurveBulge      float64      `json:"curveBulge"`
	Bounds          boundsJSON   `json:"bounds"`
	Sectors         []sectorJSON `json:"sectors"`
	Closing         segmentJSON  `json:"closing"`
	Caption         captionJSON  `json:"caption"`
	Area            areaJSON     `json:"area"`
}

type errorJSON struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type stateJSON struct {
	Input            string `json:"input"`
	Count            int    `json:"count"`
	Phase            string `json:"phase"`
	DrawEnabled      bool   `json:"drawEnabled"`
	RearrangeEnabled bool   `json:"rearrangeEnabled"`
	Status           string `json:"status"`
	Scene            string `json:"scene"`
	ErrorKind        string `json:"errorKind,omitempty"`
}

type boardJSON struct {
	Tool    string  `json:"tool"`
	Color   string  `json:"color"`
	Width   float64 `json:"width"`
	Drawing bool    `json:"drawing"`
}

// ---------- request types ----------

type inputRequest struct {
	Input *string `json:"input"`
}

type pointerRequest struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type settingsRequest struct {
	Tool  *string  `json:"tool"`
	Color *string  `json:"color"`
	Width *float64 `json:"width"`
}

// ---------- conversions ----------

func toCoord(c geom.Coord) coordJSON {
	return coordJSON{X: c.X, Y: c.Y}
}

func toSegment(s geometry.Segment) segmentJSON {
	return segmentJSON{From: toCoord(s.From), To: toCoord(s.To)}
}

func toArc(a geometry.ArcSpan) arcJSON {
	return arcJSON{Start: toCoord(a.Start), Control: toCoord(a.Control), End: toCoord(a.End)}
}

func buildSectorLayout(sl geometry.SectorLayout) sectorLayoutJSON {
	radii := make([]radiusJSON, len(sl.Radii))
	for i, r := range sl.Radii {
		radii[i] = radiusJSON{Index: r.Index, Angle: r.Angle, segmentJSON: toSegment(r.Segment)}
	}
	skipped := sl.Skipped
	if skipped == nil {
		skipped = []int{}
	}
	return sectorLayoutJSON{
		Count:     sl.Count,
		AngleStep: sl.AngleStep,
		Circumference: circleJSON{
			Center: toCoord(sl.Circumference.Center),
			Radius: sl.Circumference.Radius,
		},
		Radii:    radii,
		Skipped:  skipped,
		Degraded: sl.Degraded(),
	}
}

func buildRearranged(rs geometry.RearrangedShape) rearrangedJSON {
	sectors := make([]sectorJSON, len(rs.Sectors))
	for i, s := range rs.Sectors {
		sectors[i] = sectorJSON{
			Index:     s.Index,
			BaseLeft:  toCoord(s.BaseLeft),
			BaseRight: toCoord(s.BaseRight),
			Tip:       toCoord(s.Tip),
			LeftEdge:  toSegment(s.LeftEdge),
			RightEdge: toSegment(s.RightEdge),
			Top:       toArc(s.Top),
			Bottom:    toArc(s.Bottom),
		}
	}
	return rearrangedJSON{
		N:               rs.N,
		ArcLength:       rs.ArcLength,
		NumSectors:      rs.NumSectors,
		TotalBaseLength: rs.TotalBaseLength,
		ShapeHeight:     rs.ShapeHeight,
		ShiftX:          rs.ShiftX,
		VisualWidth:     rs.VisualWidth,
		StartX:          rs.StartX,
		TopBaseY:        rs.TopBaseY,
		TipY:            rs.TipY,
		CurveBulge:      rs.CurveBulge,
		Bounds:          boundsJSON{Min: toCoord(rs.Bounds.Min), Max: toCoord(rs.Bounds.Max)},
		Sectors:         sectors,
		Closing:         toSegment(rs.Closing),
		Caption: captionJSON{
			Anchor:  toCoord(rs.Caption.Anchor),
			Size:    rs.Caption.Size,
			Lines:   rs.Caption.Lines,
			Compact: rs.Caption.Compact,
		},
		Area: areaJSON{
			ApproxBase:   rs.Area.ApproxBase,
			ApproxHeight: rs.Area.ApproxHeight,
			ApproxArea:   rs.Area.ApproxArea,
			ActualArea:   rs.Area.ActualArea,
			OutlineArea:  rs.OutlineArea(),
		},
	}
}

func buildState(st app.State, sc app.Scene) stateJSON {
	return stateJSON{
		Input:            st.Input,
		Count:            st.Count,
		Phase:            st.Phase.String(),
		DrawEnabled:      st.DrawEnabled,
		RearrangeEnabled: st.RearrangeEnabled,
		Status:           st.Status,
		Scene:            sc.Kind.String(),
		ErrorKind:        sc.ErrorKind,
	}
}
