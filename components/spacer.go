package components

import (
	tessera "github.com/grindlemire/go-tessera"
)

// SpacerArgs configures a Spacer.
type SpacerArgs struct {
	Width  tessera.DimensionValue
	Height tessera.DimensionValue
}

// Spacer takes up space and draws nothing. A Fill spacer inside a bounded
// container takes all the space it is offered.
func Spacer(ui *tessera.Composer, args SpacerArgs) tessera.NodeID {
	return ui.Component("spacer", func() {
		ui.Constrain(tessera.NewConstraint(args.Width, args.Height))
		ui.Measure(func(in *tessera.MeasureInput) (tessera.ComputedData, error) {
			return tessera.ComputedFromSize(in.EffectiveConstraint.Resolve(tessera.Size{})), nil
		})
	})
}

// Gap is a fixed-size spacer.
func Gap(ui *tessera.Composer, width, height tessera.Dp) tessera.NodeID {
	return Spacer(ui, SpacerArgs{
		Width:  tessera.Fixed(width.ToPx()),
		Height: tessera.Fixed(height.ToPx()),
	})
}
