package advanced

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the mesh in the rendered image, in pixels
const drawPadding = 20

// Render the mesh to a PNG file. Triangles are shaded by mean elevation, from
// dark (lowest) to light (highest), and input points are marked in red. The
// image is scale pixels per unit, flipped so that +y points up.
func (m *Mesh) DrawPNG(path string, scale float64) error {
	if !(scale > 0) {
		return errors.Errorf("scale must be positive, got %v", scale)
	}

	bounds := m.bounds
	width := int(math.Ceil(scale*bounds.Width())) + drawPadding*2
	height := int(math.Ceil(scale*bounds.Height())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	toScreen := func(p *Point) (float64, float64) {
		x := drawPadding + scale*(p.X-bounds.MinX)
		y := float64(height) - drawPadding - scale*(p.Y-bounds.MinY)
		return x, y
	}

	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, p := range m.Points {
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	shade := func(t *Triangle) float64 {
		if maxZ == minZ {
			return 0.5
		}
		mean := (t.P1.Z + t.P2.Z + t.P3.Z) / 3
		return 0.2 + 0.7*(mean-minZ)/(maxZ-minZ)
	}

	c.SetLineWidth(1)
	for _, t := range m.Triangles {
		for i, p := range t.Vertices() {
			x, y := toScreen(p)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		level := shade(t)
		c.SetRGB(0, level, level)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range m.Points {
		x, y := toScreen(p)
		c.DrawCircle(x, y, 2)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}
