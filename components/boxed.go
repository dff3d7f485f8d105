package components

import (
	tessera "github.com/grindlemire/go-tessera"
)

// BoxedArgs configures a Boxed container.
type BoxedArgs struct {
	Alignment tessera.Alignment
	Width     tessera.DimensionValue
	Height    tessera.DimensionValue
}

// Boxed stacks children on top of each other, later children painted over
// earlier ones, each anchored inside the box by Alignment. The box sizes to
// its largest child unless its own constraint says otherwise.
func Boxed(ui *tessera.Composer, args BoxedArgs, children ...func()) tessera.NodeID {
	return ui.Component("boxed", func() {
		ui.Constrain(tessera.NewConstraint(args.Width, args.Height))
		ui.Measure(func(in *tessera.MeasureInput) (tessera.ComputedData, error) {
			sizes := make([]tessera.Size, len(in.Children))
			var content tessera.Size
			for i, child := range in.Children {
				computed, err := in.Measure(child, in.EffectiveConstraint)
				if err != nil {
					return tessera.ComputedData{}, err
				}
				sizes[i] = computed.Size()
				content.Width = content.Width.Max(computed.Width)
				content.Height = content.Height.Max(computed.Height)
			}

			size := in.EffectiveConstraint.Resolve(content)
			for i, child := range in.Children {
				in.Place(child, args.Alignment.Offset(size, sizes[i]))
			}
			return tessera.ComputedFromSize(size), nil
		})
		for _, child := range children {
			if child != nil {
				child()
			}
		}
	})
}
