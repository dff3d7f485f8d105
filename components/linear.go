package components

import (
	tessera "github.com/grindlemire/go-tessera"
)

// Item is one entry of a Row or Column. Every node Content creates shares
// the item's weight.
type Item struct {
	Content func()
	// Weight > 0 gives the item a share of the main-axis space left after
	// unweighted items are measured. Weights are ignored when the main axis
	// is unbounded.
	Weight float32
}

// Child returns an unweighted item.
func Child(content func()) Item {
	return Item{Content: content}
}

// Weighted returns an item that takes weight shares of the leftover space.
func Weighted(weight float32, content func()) Item {
	return Item{Content: content, Weight: weight}
}

// LinearArgs configures a Row or Column. The zero value wraps its content on
// both axes and packs children at the start.
type LinearArgs struct {
	Width              tessera.DimensionValue
	Height             tessera.DimensionValue
	MainAxisAlignment  tessera.MainAxisAlignment
	CrossAxisAlignment tessera.CrossAxisAlignment
}

// Row lays items out left to right.
func Row(ui *tessera.Composer, args LinearArgs, items ...Item) tessera.NodeID {
	return linear(ui, "row", horizontal, args, items)
}

// Column lays items out top to bottom.
func Column(ui *tessera.Composer, args LinearArgs, items ...Item) tessera.NodeID {
	return linear(ui, "column", vertical, args, items)
}

type axis uint8

const (
	horizontal axis = iota
	vertical
)

// split returns the (main, cross) components of a pair laid out on a.
func split[T any](a axis, x, y T) (T, T) {
	if a == horizontal {
		return x, y
	}
	return y, x
}

// join is the inverse of split.
func join[T any](a axis, main, cross T) (T, T) {
	return split(a, main, cross)
}

func linear(ui *tessera.Composer, name string, a axis, args LinearArgs, items []Item) tessera.NodeID {
	var weights []float32
	return ui.Component(name, func() {
		ui.Constrain(tessera.NewConstraint(args.Width, args.Height))
		ui.Measure(func(in *tessera.MeasureInput) (tessera.ComputedData, error) {
			return measureLinear(in, a, args, weights)
		})

		id, _ := ui.Current()
		for _, item := range items {
			if item.Content == nil {
				continue
			}
			before := len(ui.Tree().Children(id))
			item.Content()
			for i, n := 0, len(ui.Tree().Children(id))-before; i < n; i++ {
				weights = append(weights, item.Weight)
			}
		}
	})
}

func measureLinear(in *tessera.MeasureInput, a axis, args LinearArgs, weights []float32) (tessera.ComputedData, error) {
	mainDim, crossDim := split(a, in.EffectiveConstraint.Width, in.EffectiveConstraint.Height)
	mainLimit, mainBounded := mainDim.UpperBound()

	crossOffer := crossDim
	if args.CrossAxisAlignment == tessera.CrossStretch {
		if limit, ok := crossDim.UpperBound(); ok {
			crossOffer = tessera.Fixed(limit)
		}
	}

	n := len(in.Children)
	mains := make([]tessera.Px, n)
	crosses := make([]tessera.Px, n)
	measure := func(i int, mainOffer tessera.DimensionValue) error {
		w, h := join(a, mainOffer, crossOffer)
		computed, err := in.Measure(in.Children[i], tessera.NewConstraint(w, h))
		if err != nil {
			return err
		}
		mains[i], crosses[i] = split(a, computed.Width, computed.Height)
		return nil
	}

	// Unweighted children first, each offered what the previous ones left.
	var used tessera.Px
	var totalWeight float32
	lastWeighted := -1
	for i := range in.Children {
		if w := weightAt(weights, i); w > 0 && mainBounded {
			totalWeight += w
			lastWeighted = i
			continue
		}
		offer := tessera.Wrap()
		if mainBounded {
			offer = tessera.WrapBetween(tessera.Bound{}, tessera.Bounded(mainLimit.SubFloor(used)))
		}
		if err := measure(i, offer); err != nil {
			return tessera.ComputedData{}, err
		}
		used = used.Add(mains[i])
	}

	// Weighted children split the remainder. The last one absorbs rounding.
	if totalWeight > 0 {
		remaining := mainLimit.SubFloor(used)
		var given tessera.Px
		for i := range in.Children {
			w := weightAt(weights, i)
			if w <= 0 {
				continue
			}
			share := tessera.PxFromFloat(float64(remaining) * float64(w) / float64(totalWeight))
			if i == lastWeighted {
				share = remaining.SubFloor(given)
			}
			given = given.Add(share)
			if err := measure(i, tessera.Fixed(share)); err != nil {
				return tessera.ComputedData{}, err
			}
			used = used.Add(mains[i])
		}
	}

	var contentCross tessera.Px
	for _, c := range crosses {
		contentCross = contentCross.Max(c)
	}
	cw, ch := join(a, used, contentCross)
	size := in.EffectiveConstraint.Resolve(tessera.NewSize(cw, ch))
	finalMain, finalCross := split(a, size.Width, size.Height)

	offsets := tessera.JustifyOffsets(args.MainAxisAlignment, finalMain, mains)
	for i, child := range in.Children {
		crossOffset := tessera.AlignOffset(args.CrossAxisAlignment, finalCross, crosses[i])
		x, y := join(a, offsets[i], crossOffset)
		in.Place(child, tessera.Pos(x, y))
	}
	return tessera.ComputedFromSize(size), nil
}

func weightAt(weights []float32, i int) float32 {
	if i < len(weights) {
		return weights[i]
	}
	return 0
}
