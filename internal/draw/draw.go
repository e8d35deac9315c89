package draw

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/osuushi/frontier/geom"
	"github.com/pkg/errors"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the scene, in pixels
const padding = 20

// Scene is everything one picture shows. Any part may be empty.
type Scene struct {
	Points []geom.Point
	Hull   geom.Polygon
	Trail  []geom.Point
	Agent  *geom.Point
}

func (s Scene) bounds() (lo, hi geom.Point) {
	lo = geom.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = geom.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(points []geom.Point) {
		for _, p := range points {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	grow(s.Points)
	grow(s.Hull)
	grow(s.Trail)
	if s.Agent != nil {
		grow([]geom.Point{*s.Agent})
	}
	if math.IsInf(lo.X, 1) {
		return geom.Point{}, geom.Point{}
	}
	return lo, hi
}

// Render draws the scene, with world units multiplied by scale.
func Render(scene Scene, scale float64) *gg.Context {
	lo, hi := scene.bounds()

	// Set up the context
	width := int(scale*(hi.X-lo.X)) + padding*2
	height := int(scale*(hi.Y-lo.Y)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-lo.X, -lo.Y)

	// Circle radii are in world units after scaling. Line widths stay in pixels.
	px := 1 / scale

	if len(scene.Hull) >= 3 {
		c.MoveTo(scene.Hull[0].X, scene.Hull[0].Y)
		for _, p := range scene.Hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.35)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()

		center := scene.Hull.Center()
		c.SetRGB(1, 1, 0)
		c.DrawCircle(center.X, center.Y, 3*px)
		c.Fill()
	}

	if len(scene.Trail) >= 2 {
		c.MoveTo(scene.Trail[0].X, scene.Trail[0].Y)
		for _, p := range scene.Trail[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.SetRGBA(1, 0.5, 0, 0.6)
		c.SetLineWidth(1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range scene.Points {
		c.DrawCircle(p.X, p.Y, 1.5*px)
		c.Fill()
	}

	if scene.Agent != nil {
		c.SetRGB(1, 0.2, 0.2)
		c.DrawCircle(scene.Agent.X, scene.Agent.Y, 4*px)
		c.Fill()
	}
	return c
}

// Save renders the scene to a PNG file.
func Save(path string, scene Scene, scale float64) error {
	if err := Render(scene, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Show prints a PNG file to the terminal (iTerm only).
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
