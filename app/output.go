package app

import (
	"image"
	"image/png"
	"io"
	"strconv"

	"circle-sectors/geometry"
	"circle-sectors/render"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Output formats understood by Encode.
const (
	FORMAT_SVG = "svg"
	FORMAT_PNG = "png"
)

// SceneFor builds a standalone figure without touching any State.
// kind is "sectors" or "rearranged"; nText is the count as typed.
func SceneFor(kind, nText string, cfg geometry.Config) (Scene, error) {
	switch kind {
	case "sectors":
		n, err := strconv.ParseFloat(nText, 64)
		if err != nil {
			return Scene{}, errors.Wrapf(geometry.ErrInvalidCount, "%q", nText)
		}
		sl, err := geometry.ComputeSectorLayout(n, cfg)
		if err != nil {
			return Scene{}, err
		}
		return Scene{Kind: SceneSectors, Sectors: sl}, nil
	case "rearranged":
		n, err := strconv.Atoi(nText)
		if err != nil {
			return Scene{}, errors.Wrapf(geometry.ErrInvalidCount, "%q", nText)
		}
		rs, err := geometry.ComputeRearrangedLayout(n, cfg)
		if err != nil {
			return Scene{}, err
		}
		return Scene{Kind: SceneRearranged, Shape: rs}, nil
	}
	return Scene{}, errors.Errorf("unknown figure %q", kind)
}

// Rasterize paints sc on a fresh canvas-sized image. Any overlays are
// composited on top in order.
func Rasterize(sc Scene, cfg geometry.Config, overlays ...image.Image) *image.RGBA {
	r := render.NewRaster(int(cfg.CanvasWidth), int(cfg.CanvasHeight), render.ColorBackground)
	sc.Paint(r)
	img := r.Image()
	for _, o := range overlays {
		draw.Draw(img, img.Bounds(), o, image.Point{}, draw.Over)
	}
	return img
}

// Encode writes sc as an SVG document or a PNG image.
func Encode(w io.Writer, sc Scene, cfg geometry.Config, format string) error {
	switch format {
	case FORMAT_SVG:
		svg := render.NewSVG(cfg.Canvas())
		sc.Paint(svg)
		_, err := svg.WriteTo(w)
		return errors.Wrap(err, "could not write svg")
	case FORMAT_PNG:
		return errors.Wrap(png.Encode(w, Rasterize(sc, cfg)), "could not write png")
	}
	return errors.Errorf("unknown format %q", format)
}

// ContentType is the MIME type for an Encode format.
func ContentType(format string) string {
	if format == FORMAT_PNG {
		return "image/png"
	}
	return "image/svg+xml"
}
