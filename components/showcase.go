package components

import (
	"strings"

	tessera "github.com/grindlemire/go-tessera"
)

// ShowcaseState holds the interactive parts of the showcase.
type ShowcaseState struct {
	Switch   *SwitchState
	Checkbox *CheckboxState
}

// NewShowcaseState returns the showcase state with everything off.
func NewShowcaseState() *ShowcaseState {
	return &ShowcaseState{
		Switch:   NewSwitchState(false),
		Checkbox: NewCheckboxState(false),
	}
}

// ShowcaseAlignments are the row alignments the showcase demonstrates, in
// display order.
var ShowcaseAlignments = []tessera.MainAxisAlignment{
	tessera.MainStart,
	tessera.MainCenter,
	tessera.MainEnd,
	tessera.MainSpaceEvenly,
	tessera.MainSpaceBetween,
	tessera.MainSpaceAround,
}

var (
	showcaseLineColor = Color{0.9, 0.9, 0.9, 1}
	showcaseBoxColors = []Color{
		{0.2, 0.6, 0.9, 1},
		{0.9, 0.4, 0.3, 1},
		{0.3, 0.8, 0.4, 1},
	}
)

// Showcase composes a page that demonstrates every main-axis alignment of a
// row, followed by a switch and a checkbox driven by state.
func Showcase(ui *tessera.Composer, state *ShowcaseState) tessera.NodeID {
	args := DefaultSurfaceArgs()
	args.Color = White
	args.Padding = 20
	args.Width = Dim(tessera.Fill())
	args.Height = Dim(tessera.Fill())

	return Surface(ui, args, func() {
		items := []Item{
			Child(func() { Label(ui, "Tessera Alignment Demo", 24) }),
			Child(func() { Gap(ui, 0, 30) }),
			Child(func() { Label(ui, "Row main axis alignment:", 18) }),
		}
		for _, mode := range ShowcaseAlignments {
			mode := mode
			items = append(items,
				Child(func() { Gap(ui, 0, 10) }),
				Child(func() { AlignmentDemoLine(ui, mode) }),
			)
		}
		items = append(items,
			Child(func() { Gap(ui, 0, 20) }),
			Child(func() { controlsRow(ui, state) }),
		)
		Column(ui, LinearArgs{}, items...)
	})
}

// AlignmentDemoLine is a titled 400×70 strip holding three boxes laid out
// with mode.
func AlignmentDemoLine(ui *tessera.Composer, mode tessera.MainAxisAlignment) tessera.NodeID {
	return Column(ui, LinearArgs{},
		Child(func() { Label(ui, mode.String(), 14) }),
		Child(func() {
			Surface(ui, SurfaceArgs{
				Color:        showcaseLineColor,
				CornerRadius: 25,
				Padding:      10,
				Width:        Dim(tessera.Fixed(tessera.Dp(400).ToPx())),
				Height:       Dim(tessera.Fixed(tessera.Dp(70).ToPx())),
			}, func() {
				boxes := make([]Item, len(showcaseBoxColors))
				for i, color := range showcaseBoxColors {
					color := color
					label := strings.Repeat("I", i+1)
					boxes[i] = Child(func() { smallBox(ui, label, color) })
				}
				Row(ui, LinearArgs{
					Width:              tessera.Fill(),
					MainAxisAlignment:  mode,
					CrossAxisAlignment: tessera.CrossCenter,
				}, boxes...)
			})
		}),
	)
}

func smallBox(ui *tessera.Composer, label string, color Color) tessera.NodeID {
	side := tessera.Fixed(tessera.Dp(40).ToPx())
	return Surface(ui, SurfaceArgs{
		Color:        color,
		CornerRadius: 25,
		Padding:      8,
		Width:        Dim(side),
		Height:       Dim(side),
	}, func() {
		Text(ui, TextArgs{Text: label, Color: White, Size: 12})
	})
}

func controlsRow(ui *tessera.Composer, state *ShowcaseState) tessera.NodeID {
	return Row(ui, LinearArgs{CrossAxisAlignment: tessera.CrossCenter},
		Child(func() { Switch(ui, SwitchArgs{State: state.Switch}) }),
		Child(func() { Gap(ui, 12, 0) }),
		Child(func() { Label(ui, "Switch", 16) }),
		Child(func() { Gap(ui, 24, 0) }),
		Child(func() { Checkbox(ui, CheckboxArgs{State: state.Checkbox}) }),
		Child(func() { Gap(ui, 12, 0) }),
		Child(func() { Label(ui, "Checkbox", 16) }),
	)
}
