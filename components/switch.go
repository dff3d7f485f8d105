package components

import (
	"time"

	tessera "github.com/grindlemire/go-tessera"
)

// SwitchAnimation is how long the thumb takes to travel across the track.
const SwitchAnimation = 150 * time.Millisecond

type switchModel struct {
	checked   bool
	progress  float32
	animStart time.Time
	animating bool
	bounds    tessera.Rect
	pointer   pointer
}

// SwitchState is the cross-frame state of a Switch: whether it is checked,
// how far the thumb has travelled, and where the switch was last drawn.
// It is safe for concurrent use.
type SwitchState struct {
	model *tessera.Shared[switchModel]
	now   func() time.Time
}

// NewSwitchState returns a state at rest in the given position.
func NewSwitchState(checked bool) *SwitchState {
	m := switchModel{checked: checked}
	if checked {
		m.progress = 1
	}
	return &SwitchState{model: tessera.NewShared(m), now: time.Now}
}

// Checked reports whether the switch is on.
func (s *SwitchState) Checked() bool {
	return s.model.Get().checked
}

// Progress returns the thumb position from 0 (off) to 1 (on).
func (s *SwitchState) Progress() float32 {
	return s.model.Get().progress
}

// Animating reports whether the thumb is still moving.
func (s *SwitchState) Animating() bool {
	return s.model.Get().animating
}

// Bounds returns where the switch was drawn in the last frame.
func (s *SwitchState) Bounds() tessera.Rect {
	return s.model.Get().bounds
}

// Toggle flips the switch and starts the thumb animation.
func (s *SwitchState) Toggle() {
	now := s.now()
	s.model.With(func(m *switchModel) {
		m.checked = !m.checked
		m.animStart = now
		m.animating = true
	})
}

// SetChecked moves the switch to checked, animating if it changes.
func (s *SwitchState) SetChecked(checked bool) {
	if s.Checked() != checked {
		s.Toggle()
	}
}

// advance moves the thumb according to the time since the last toggle.
func (s *SwitchState) advance() {
	now := s.now()
	s.model.With(func(m *switchModel) {
		if !m.animating {
			return
		}
		frac := float32(now.Sub(m.animStart)) / float32(SwitchAnimation)
		if frac >= 1 {
			frac = 1
			m.animating = false
		}
		if frac < 0 {
			frac = 0
		}
		if m.checked {
			m.progress = frac
		} else {
			m.progress = 1 - frac
		}
	})
}

// pressed reports whether the frame carried a left press inside the switch
// and remembers the pointer for the next frame.
func (s *SwitchState) pressed(in *tessera.StateHandlerInput) bool {
	var hit bool
	s.model.With(func(m *switchModel) {
		hit, m.pointer = leftPressInside(in, m.bounds, m.pointer)
	})
	return hit
}

func (s *SwitchState) setBounds(r tessera.Rect) {
	s.model.With(func(m *switchModel) {
		m.bounds = r
	})
}

// SwitchArgs configures a Switch. Zero fields take the defaults.
type SwitchArgs struct {
	// State is required.
	State *SwitchState
	// OnToggle receives the requested new value when the switch is clicked.
	// When nil the switch toggles State itself.
	OnToggle func(checked bool)

	Width        tessera.Dp // 52
	Height       tessera.Dp // 32
	ThumbPadding tessera.Dp // 3

	TrackColor        Color
	TrackCheckedColor Color
	ThumbColor        Color
}

// Default switch colors.
var (
	DefaultTrackColor        = Color{0.8, 0.8, 0.8, 1}
	DefaultTrackCheckedColor = Color{0.6, 0.7, 0.9, 1}
	DefaultThumbColor        = White
)

func (args SwitchArgs) withDefaults() SwitchArgs {
	if args.Width == 0 {
		args.Width = 52
	}
	if args.Height == 0 {
		args.Height = 32
	}
	if args.ThumbPadding == 0 {
		args.ThumbPadding = 3
	}
	if args.TrackColor == (Color{}) {
		args.TrackColor = DefaultTrackColor
	}
	if args.TrackCheckedColor == (Color{}) {
		args.TrackCheckedColor = DefaultTrackCheckedColor
	}
	if args.ThumbColor == (Color{}) {
		args.ThumbColor = DefaultThumbColor
	}
	return args
}

// Switch draws a toggle switch: a rounded track with a round thumb that
// slides between the ends.
func Switch(ui *tessera.Composer, args SwitchArgs) tessera.NodeID {
	args = args.withDefaults()
	state := args.State
	if state == nil {
		panic("tessera: Switch requires a State")
	}

	width, height := args.Width.ToPx(), args.Height.ToPx()
	pad := args.ThumbPadding.ToPx()
	thumb := height.SubFloor(pad.Mul(2))

	return ui.Component("switch", func() {
		ui.Constrain(tessera.FixedConstraint(width, height))
		ui.StateHandler(func(in *tessera.StateHandlerInput) {
			state.advance()
			if !state.pressed(in) {
				return
			}
			if args.OnToggle != nil {
				args.OnToggle(!state.Checked())
			} else {
				state.Toggle()
			}
		})
		ui.OnPlaced(state.setBounds)
		ui.Measure(func(in *tessera.MeasureInput) (tessera.ComputedData, error) {
			progress := state.Progress()
			if len(in.Children) > 0 {
				computed, err := in.Measure(in.Children[0], tessera.WrapConstraint())
				if err != nil {
					return tessera.ComputedData{}, err
				}
				travel := width.SubFloor(computed.Width).SubFloor(pad.Mul(2))
				x := pad.Add(tessera.PxFromFloat(float64(travel) * float64(progress)))
				y := height.SubFloor(computed.Height) / 2
				in.Place(in.Children[0], tessera.Pos(x, y))
			}
			in.SetDrawable(ShapeCommand{
				Kind:         ShapeRect,
				Color:        lerpColor(args.TrackColor, args.TrackCheckedColor, progress),
				CornerRadius: args.Height.Pixels() / 2,
			})
			return tessera.ComputedFromSize(tessera.NewSize(width, height)), nil
		})

		Surface(ui, SurfaceArgs{
			Color:        args.ThumbColor,
			CornerRadius: args.Height/2 - args.ThumbPadding,
			Width:        Dim(tessera.Fixed(thumb)),
			Height:       Dim(tessera.Fixed(thumb)),
		}, nil)
	})
}

func lerpColor(a, b Color, t float32) Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	var out Color
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
