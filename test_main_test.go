package tessera

import (
	"os"
	"sync"
	"testing"

	"github.com/grindlemire/go-tessera/internal/debug"
)

func TestMain(m *testing.M) {
	// Keep TESSERA_DEBUG from leaking log files out of test runs.
	debug.SetOutput(nil)
	os.Exit(m.Run())
}

// fakePresenter records every presented frame.
type fakePresenter struct {
	mu     sync.Mutex
	size   Size
	frames [][]DrawCommand
	err    error
}

func (p *fakePresenter) Size() Size {
	return p.size
}

func (p *fakePresenter) Present(commands []DrawCommand) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.frames = append(p.frames, commands)
	return nil
}

func (p *fakePresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

// leaf composes a fixed-size node that draws its name.
func leaf(ui *Composer, name string, w, h Px) NodeID {
	return ui.Component(name, func() {
		ui.Constrain(FixedConstraint(w, h))
		ui.Measure(func(in *MeasureInput) (ComputedData, error) {
			in.SetDrawable(name)
			return ComputedFromSize(in.EffectiveConstraint.Resolve(Size{})), nil
		})
	})
}

// padded composes a container that offers its children its effective
// constraint deflated by padding on each side and places them at
// (padding, padding).
func padded(ui *Composer, name string, own Constraint, padding Px, body func()) NodeID {
	return ui.Component(name, func() {
		ui.Constrain(own)
		ui.Measure(func(in *MeasureInput) (ComputedData, error) {
			in.SetDrawable(name)
			offered := in.EffectiveConstraint.Deflate(padding.Mul(2), padding.Mul(2))
			var content Size
			for _, child := range in.Children {
				computed, err := in.Measure(child, offered)
				if err != nil {
					return ComputedData{}, err
				}
				in.Place(child, Pos(padding, padding))
				content.Width = content.Width.Max(computed.Width)
				content.Height = content.Height.Max(computed.Height)
			}
			content.Width = content.Width.Add(padding.Mul(2))
			content.Height = content.Height.Add(padding.Mul(2))
			return ComputedFromSize(in.EffectiveConstraint.Resolve(content)), nil
		})
		body()
	})
}

// row composes a horizontal container that measures children under its
// effective constraint and justifies them with mode.
func row(ui *Composer, name string, own Constraint, mode MainAxisAlignment, body func()) NodeID {
	return ui.Component(name, func() {
		ui.Constrain(own)
		ui.Measure(func(in *MeasureInput) (ComputedData, error) {
			sizes, err := in.MeasureAll(in.Children, in.EffectiveConstraint)
			if err != nil {
				return ComputedData{}, err
			}
			widths := make([]Px, len(sizes))
			var content Size
			for i, s := range sizes {
				widths[i] = s.Width
				content.Width = content.Width.Add(s.Width)
				content.Height = content.Height.Max(s.Height)
			}
			final := in.EffectiveConstraint.Resolve(content)
			for i, x := range JustifyOffsets(mode, final.Width, widths) {
				in.Place(in.Children[i], Pos(x, 0))
			}
			return ComputedFromSize(final), nil
		})
		body()
	})
}
