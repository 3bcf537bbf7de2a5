// Package render draws elevator arm configurations as 2D line drawings.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"go.viam.com/elevarm/kinematics"
	"go.viam.com/elevarm/spatialmath"
)

// Kinematics places the links of a configuration. The renderer never derives positions itself.
type Kinematics interface {
	BasePosition(kinematics.Configuration) spatialmath.Position
	ElbowPosition(kinematics.Configuration) spatialmath.Position
	ForwardKinematics(kinematics.Configuration) spatialmath.Position
}

var _ Kinematics = (*kinematics.Solver)(nil)

// Options control the size and look of a rendered image.
type Options struct {
	Width  int
	Height int
	// Margin is the blank border around the drawing, in pixels.
	Margin    float64
	LineWidth float64
	FontSize  float64
	// Labels draws the joint angles next to each tool tip.
	Labels bool
}

// DefaultOptions returns a 640x640 image with labels.
func DefaultOptions() Options {
	return Options{
		Width:     640,
		Height:    640,
		Margin:    40,
		LineWidth: 3,
		FontSize:  12,
		Labels:    true,
	}
}

var (
	backgroundColor = color.White
	elevatorColor   = color.RGBA{128, 128, 128, 255}
	targetColor     = color.RGBA{220, 0, 0, 255}
	labelColor      = color.Black
	armPalette      = []color.RGBA{
		{31, 119, 180, 255},
		{255, 127, 14, 255},
		{44, 160, 44, 255},
		{148, 103, 189, 255},
		{140, 86, 75, 255},
		{23, 190, 207, 255},
	}
)

// Renderer draws configurations of one arm.
type Renderer struct {
	kin  Kinematics
	opts Options
}

// NewRenderer returns a renderer using kin to place the links.
func NewRenderer(kin Kinematics, opts Options) (*Renderer, error) {
	if kin == nil {
		return nil, errors.New("renderer needs kinematics")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if 2*opts.Margin >= float64(opts.Width) || 2*opts.Margin >= float64(opts.Height) {
		return nil, errors.Errorf("margin %v leaves no room in a %dx%d image", opts.Margin, opts.Width, opts.Height)
	}
	return &Renderer{kin: kin, opts: opts}, nil
}

// view maps arm coordinates onto pixels, keeping the aspect ratio and pointing y up.
type view struct {
	min    spatialmath.Position
	scale  float64
	height float64
	margin float64
}

func (r *Renderer) newView(points []spatialmath.Position) view {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	spanX := math.Max(maxX-minX, 1)
	spanY := math.Max(maxY-minY, 1)
	drawW := float64(r.opts.Width) - 2*r.opts.Margin
	drawH := float64(r.opts.Height) - 2*r.opts.Margin
	return view{
		min:    spatialmath.NewPosition(minX, minY),
		scale:  math.Min(drawW/spanX, drawH/spanY),
		height: float64(r.opts.Height),
		margin: r.opts.Margin,
	}
}

func (v view) pixel(p spatialmath.Position) (float64, float64) {
	d := p.Sub(v.min)
	return v.margin + d.X*v.scale, v.height - v.margin - d.Y*v.scale
}

// bounds lists every point the drawing has to contain.
func (r *Renderer) bounds(cfgs []kinematics.Configuration, target spatialmath.Position) []spatialmath.Position {
	points := []spatialmath.Position{spatialmath.NewPosition(0, 0), target}
	for _, c := range cfgs {
		points = append(points, r.kin.BasePosition(c), r.kin.ElbowPosition(c), r.kin.ForwardKinematics(c))
	}
	return points
}

// Draw returns an image of every configuration reaching for target.
func (r *Renderer) Draw(cfgs []kinematics.Configuration, target spatialmath.Position) image.Image {
	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	v := r.newView(r.bounds(cfgs, target))
	r.drawElevator(dc, v, cfgs, target)
	for i, c := range cfgs {
		r.drawConfiguration(dc, v, c, armPalette[i%len(armPalette)])
	}
	tx, ty := v.pixel(target)
	DrawCross(dc, tx, ty, 6, targetColor, 2)
	return dc.Image()
}

// DrawConfiguration draws a single configuration and its target onto an existing context. The
// drawing is scaled to fill the context.
func (r *Renderer) DrawConfiguration(dc *gg.Context, c kinematics.Configuration, target spatialmath.Position) {
	cfgs := []kinematics.Configuration{c}
	v := r.newView(r.bounds(cfgs, target))
	r.drawElevator(dc, v, cfgs, target)
	r.drawConfiguration(dc, v, c, armPalette[0])
	tx, ty := v.pixel(target)
	DrawCross(dc, tx, ty, 6, targetColor, 2)
}

// drawElevator draws the elevator column from the floor to the highest of the base heights and
// the target.
func (r *Renderer) drawElevator(dc *gg.Context, v view, cfgs []kinematics.Configuration, target spatialmath.Position) {
	top := math.Max(target.Y, 0)
	for _, c := range cfgs {
		top = math.Max(top, r.kin.BasePosition(c).Y)
	}
	x1, y1 := v.pixel(spatialmath.NewPosition(0, 0))
	x2, y2 := v.pixel(spatialmath.NewPosition(0, top))
	DrawDashedSegment(dc, x1, y1, x2, y2, elevatorColor, r.opts.LineWidth)
}

func (r *Renderer) drawConfiguration(dc *gg.Context, v view, c kinematics.Configuration, armColor color.Color) {
	bx, by := v.pixel(r.kin.BasePosition(c))
	ex, ey := v.pixel(r.kin.ElbowPosition(c))
	tx, ty := v.pixel(r.kin.ForwardKinematics(c))

	DrawSegment(dc, bx, by, ex, ey, armColor, r.opts.LineWidth)
	DrawSegment(dc, ex, ey, tx, ty, armColor, r.opts.LineWidth)
	dc.SetColor(armColor)
	dc.DrawCircle(bx, by, r.opts.LineWidth+1)
	dc.DrawCircle(ex, ey, r.opts.LineWidth+1)
	dc.Fill()

	arcs := jointArcs(c)
	arcRadius := 5 * (r.opts.LineWidth + 1)
	DrawArc(dc, bx, by, arcRadius, arcs[0][0], arcs[0][1], armColor, 1)
	DrawArc(dc, ex, ey, arcRadius, arcs[1][0], arcs[1][1], armColor, 1)

	if r.opts.Labels {
		DrawString(dc, c.String(), ex+4, ey+4, labelColor, r.opts.FontSize)
	}
}

// jointArcs returns the start and end pixel angles of the elbow arc, swept from the horizontal to
// the elbow link, and of the wrist arc, swept from the elbow link to the wrist link. Pixel y points
// down, so counterclockwise arm angles become negative.
func jointArcs(c kinematics.Configuration) [2][2]float64 {
	return [2][2]float64{
		{-c.Elbow, 0},
		{-(c.Elbow + c.Wrist), -c.Elbow},
	}
}

// RenderPNG draws the configurations and writes them to a PNG file at path.
func (r *Renderer) RenderPNG(path string, cfgs []kinematics.Configuration, target spatialmath.Position) error {
	if err := gg.SavePNG(path, r.Draw(cfgs, target)); err != nil {
		return errors.Wrapf(err, "cannot write render to %q", path)
	}
	return nil
}
