// Package raster paints tessera draw commands into an image with gg. It is
// a reference renderer for previews and tests, not a GPU backend.
package raster

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"

	tessera "github.com/grindlemire/go-tessera"
	"github.com/grindlemire/go-tessera/components"
	"github.com/grindlemire/go-tessera/internal/debug"
	"github.com/grindlemire/go-tessera/internal/fonts"
)

// Rasterizer paints frames into an in-memory image of a fixed size.
// It implements tessera.Presenter.
type Rasterizer struct {
	mu         sync.Mutex
	dc         *gg.Context
	size       tessera.Size
	background components.Color
	frames     int
}

// New creates a Rasterizer of the given size that clears to background
// before every frame.
func New(width, height int, background components.Color) *Rasterizer {
	return &Rasterizer{
		dc:         gg.NewContext(width, height),
		size:       tessera.NewSize(tessera.Px(width), tessera.Px(height)),
		background: background,
	}
}

// Size returns the image size.
func (r *Rasterizer) Size() tessera.Size {
	return r.size
}

// Frames returns the number of frames presented.
func (r *Rasterizer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Present clears the image and paints commands in order.
func (r *Rasterizer) Present(commands []tessera.DrawCommand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dc.SetColor(r.background.NRGBA())
	r.dc.Clear()
	for i, cmd := range commands {
		if err := r.draw(cmd); err != nil {
			return fmt.Errorf("draw command %d (%s): %w", i, cmd.Node, err)
		}
	}
	r.frames++
	return nil
}

// Image returns the last painted frame.
func (r *Rasterizer) Image() image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dc.Image()
}

// EncodePNG writes the last painted frame to w.
func (r *Rasterizer) EncodePNG(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dc.EncodePNG(w)
}

// SavePNG writes the last painted frame to path.
func (r *Rasterizer) SavePNG(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dc.SavePNG(path)
}

func (r *Rasterizer) draw(cmd tessera.DrawCommand) error {
	x, y := float64(cmd.Position.X), float64(cmd.Position.Y)
	w, h := float64(cmd.Size.Width), float64(cmd.Size.Height)

	switch d := cmd.Drawable.(type) {
	case components.ShapeCommand:
		r.drawShape(d, x, y, w, h)
	case components.TextCommand:
		return r.drawText(d, x, y)
	default:
		debug.Log("raster: skipping %T drawable of %s", cmd.Drawable, cmd.Node)
	}
	return nil
}

func (r *Rasterizer) drawShape(s components.ShapeCommand, x, y, w, h float64) {
	radius := float64(s.CornerRadius)
	if s.Shadow != nil && !s.Shadow.Color.IsTransparent() {
		r.drawShadow(*s.Shadow, x, y, w, h, radius)
	}
	if s.Color.IsTransparent() {
		return
	}

	r.dc.SetColor(s.Color.NRGBA())
	if s.Kind == components.ShapeOutlinedRect {
		bw := float64(s.BorderWidth)
		r.rect(x+bw/2, y+bw/2, w-bw, h-bw, radius)
		r.dc.SetLineWidth(bw)
		r.dc.Stroke()
		return
	}
	r.rect(x, y, w, h, radius)
	r.dc.Fill()
}

// drawShadow approximates a blurred shadow with stacked rectangles of
// decreasing opacity, one step per two pixels of smoothness.
func (r *Rasterizer) drawShadow(s components.Shadow, x, y, w, h, radius float64) {
	x += float64(s.OffsetX)
	y += float64(s.OffsetY)

	steps := min(max(int(s.Smoothness/2), 1), 10)
	base := s.Color[3] / float32(steps)
	for i := 0; i < steps; i++ {
		grow := float64(i) * 2
		alpha := base * (1 - float32(i)/float32(steps))
		r.dc.SetColor(s.Color.WithAlpha(alpha).NRGBA())
		r.rect(x-grow, y-grow, w+grow*2, h+grow*2, radius+grow)
		r.dc.Fill()
	}
}

func (r *Rasterizer) rect(x, y, w, h, radius float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if radius > 0 {
		r.dc.DrawRoundedRectangle(x, y, w, h, min(radius, w/2, h/2))
		return
	}
	r.dc.DrawRectangle(x, y, w, h)
}

func (r *Rasterizer) drawText(t components.TextCommand, x, y float64) error {
	if t.Color.IsTransparent() || len(t.Lines) == 0 {
		return nil
	}
	face, err := fonts.Face(float64(t.Size))
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)
	r.dc.SetColor(t.Color.NRGBA())

	ascent := float64(fonts.Ascent(face))
	for i, line := range t.Lines {
		r.dc.DrawString(line, x, y+ascent+float64(i)*float64(t.LineHeight))
	}
	return nil
}
