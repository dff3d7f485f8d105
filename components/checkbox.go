package components

import (
	tessera "github.com/grindlemire/go-tessera"
)

type checkboxModel struct {
	checked bool
	bounds  tessera.Rect
	pointer pointer
}

// CheckboxState is the cross-frame state of a Checkbox. It is safe for
// concurrent use.
type CheckboxState struct {
	model *tessera.Shared[checkboxModel]
}

// NewCheckboxState returns a state with the given initial value.
func NewCheckboxState(checked bool) *CheckboxState {
	return &CheckboxState{model: tessera.NewShared(checkboxModel{checked: checked})}
}

// Checked reports whether the box is checked.
func (s *CheckboxState) Checked() bool {
	return s.model.Get().checked
}

// SetChecked sets the value and notifies bindings.
func (s *CheckboxState) SetChecked(checked bool) {
	s.model.Update(func(m checkboxModel) checkboxModel {
		m.checked = checked
		return m
	})
}

// Toggle flips the value and notifies bindings.
func (s *CheckboxState) Toggle() {
	s.model.Update(func(m checkboxModel) checkboxModel {
		m.checked = !m.checked
		return m
	})
}

// OnChange registers fn to run with the new value after every change.
func (s *CheckboxState) OnChange(fn func(checked bool)) tessera.Unbind {
	return s.model.Bind(func(m checkboxModel) {
		fn(m.checked)
	})
}

// Bounds returns where the checkbox was drawn in the last frame.
func (s *CheckboxState) Bounds() tessera.Rect {
	return s.model.Get().bounds
}

// pressed reports whether the frame carried a left press inside the box
// and remembers the pointer for the next frame.
func (s *CheckboxState) pressed(in *tessera.StateHandlerInput) bool {
	var hit bool
	s.model.With(func(m *checkboxModel) {
		hit, m.pointer = leftPressInside(in, m.bounds, m.pointer)
	})
	return hit
}

func (s *CheckboxState) setBounds(r tessera.Rect) {
	s.model.With(func(m *checkboxModel) {
		m.bounds = r
	})
}

// CheckboxArgs configures a Checkbox. Zero fields take the defaults.
type CheckboxArgs struct {
	// State is required.
	State *CheckboxState
	// OnToggle receives the requested new value when the box is clicked.
	// When nil the checkbox toggles State itself.
	OnToggle func(checked bool)

	Size         tessera.Dp // 24
	CornerRadius tessera.Dp // 4

	Color          Color
	CheckedColor   Color
	CheckmarkColor Color
}

// Default checkbox colors.
var (
	DefaultCheckboxColor        = Color{0.8, 0.8, 0.8, 1}
	DefaultCheckboxCheckedColor = Color{0.6, 0.7, 0.9, 1}
	DefaultCheckmarkColor       = RGB8(119, 72, 146)
)

// Checkmark is the glyph drawn inside a checked box.
const Checkmark = "✓"

func (args CheckboxArgs) withDefaults() CheckboxArgs {
	if args.Size == 0 {
		args.Size = 24
	}
	if args.CornerRadius == 0 {
		args.CornerRadius = 4
	}
	if args.Color == (Color{}) {
		args.Color = DefaultCheckboxColor
	}
	if args.CheckedColor == (Color{}) {
		args.CheckedColor = DefaultCheckboxCheckedColor
	}
	if args.CheckmarkColor == (Color{}) {
		args.CheckmarkColor = DefaultCheckmarkColor
	}
	return args
}

// Checkbox draws a square box that shows a check mark when checked.
func Checkbox(ui *tessera.Composer, args CheckboxArgs) tessera.NodeID {
	args = args.withDefaults()
	state := args.State
	if state == nil {
		panic("tessera: Checkbox requires a State")
	}
	checked := state.Checked()
	side := tessera.Fixed(args.Size.ToPx())

	return ui.Component("checkbox", func() {
		ui.StateHandler(func(in *tessera.StateHandlerInput) {
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

		color := args.Color
		if checked {
			color = args.CheckedColor
		}
		Surface(ui, SurfaceArgs{
			Color:        color,
			CornerRadius: args.CornerRadius,
			Width:        Dim(side),
			Height:       Dim(side),
		}, func() {
			if !checked {
				return
			}
			Surface(ui, SurfaceArgs{
				Color:   Transparent,
				Padding: 2,
				Width:   Dim(tessera.Fill()),
				Height:  Dim(tessera.Fill()),
			}, func() {
				Boxed(ui, BoxedArgs{
					Alignment: tessera.Center,
					Width:     tessera.Fill(),
					Height:    tessera.Fill(),
				}, func() {
					Text(ui, TextArgs{
						Text:       Checkmark,
						Color:      args.CheckmarkColor,
						Size:       args.Size * 0.7,
						LineHeight: args.Size * 0.7,
					})
				})
			})
		})
	})
}
