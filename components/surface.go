package components

import (
	tessera "github.com/grindlemire/go-tessera"
)

// SurfaceArgs configures a Surface.
type SurfaceArgs struct {
	Color        Color
	CornerRadius tessera.Dp
	Shadow       *Shadow

	// Padding is applied on every side between the surface edge and its
	// child.
	Padding tessera.Dp

	// Width and Height default to Wrap when nil.
	Width  *tessera.DimensionValue
	Height *tessera.DimensionValue

	// BorderWidth > 0 draws an outline instead of a filled rectangle.
	BorderWidth tessera.Dp
	// BorderColor defaults to Color.
	BorderColor *Color
}

// DefaultSurfaceColor is the fill used by DefaultSurfaceArgs.
var DefaultSurfaceColor = Color{0.4745, 0.5255, 0.7961, 1}

// DefaultSurfaceArgs returns args for a filled surface with the default color
// and no padding.
func DefaultSurfaceArgs() SurfaceArgs {
	return SurfaceArgs{Color: DefaultSurfaceColor}
}

// Dim returns a pointer to d, for the optional SurfaceArgs sizes.
func Dim(d tessera.DimensionValue) *tessera.DimensionValue {
	return &d
}

// Surface draws a rectangle behind child and insets it by the padding.
// Only the first child created by child is measured and placed.
func Surface(ui *tessera.Composer, args SurfaceArgs, child func()) tessera.NodeID {
	return ui.Component("surface", func() {
		ui.Constrain(tessera.NewConstraint(dimOrWrap(args.Width), dimOrWrap(args.Height)))
		ui.Measure(func(in *tessera.MeasureInput) (tessera.ComputedData, error) {
			return measureSurface(in, args)
		})
		if child != nil {
			child()
		}
	})
}

func measureSurface(in *tessera.MeasureInput, args SurfaceArgs) (tessera.ComputedData, error) {
	inset := args.Padding.ToPx().Mul(2)
	eff := in.EffectiveConstraint

	var content tessera.Size
	if len(in.Children) > 0 {
		offered := tessera.NewConstraint(insetAxis(eff.Width, inset), insetAxis(eff.Height, inset))
		child := in.Children[0]
		computed, err := in.Measure(child, offered)
		if err != nil {
			return tessera.ComputedData{}, err
		}
		pad := args.Padding.ToPx()
		in.Place(child, tessera.Pos(pad, pad))
		content = computed.Size()
	}

	size := eff.Resolve(tessera.NewSize(content.Width.Add(inset), content.Height.Add(inset)))
	in.SetDrawable(args.shape())
	return tessera.ComputedFromSize(size), nil
}

// insetAxis turns one axis of the surface's effective constraint into the
// constraint offered to its child. A bounded Fill becomes an exact length so
// the child can fill the padded area.
func insetAxis(d tessera.DimensionValue, inset tessera.Px) tessera.DimensionValue {
	if d.IsFill() {
		if limit, ok := d.UpperBound(); ok {
			return tessera.Fixed(limit.SubFloor(inset))
		}
		return tessera.Wrap()
	}
	return d.Deflate(inset)
}

func (args SurfaceArgs) shape() ShapeCommand {
	cmd := ShapeCommand{
		Kind:         ShapeRect,
		Color:        args.Color,
		CornerRadius: args.CornerRadius.Pixels(),
		Shadow:       args.Shadow,
	}
	if args.BorderWidth > 0 {
		cmd.Kind = ShapeOutlinedRect
		cmd.BorderWidth = args.BorderWidth.Pixels()
		if args.BorderColor != nil {
			cmd.Color = *args.BorderColor
		}
	}
	return cmd
}

func dimOrWrap(d *tessera.DimensionValue) tessera.DimensionValue {
	if d == nil {
		return tessera.Wrap()
	}
	return *d
}
