package layout

// JustifyOffsets returns the main-axis position of each item when sizes are
// laid out along a line of length available. Free space is distributed
// according to mode. Overflowing lines pack at the start.
func JustifyOffsets(mode MainAxisAlignment, available Px, sizes []Px) []Px {
	positions := make([]Px, len(sizes))
	if len(sizes) == 0 {
		return positions
	}

	used := ZeroPx
	for _, s := range sizes {
		used = used.Add(s.NonNegative())
	}
	free := available.SubFloor(used)

	offset := justifyOffset(mode, free, len(sizes))
	spacing := justifySpacing(mode, free, len(sizes))

	for i, s := range sizes {
		positions[i] = offset
		offset = offset.Add(s.NonNegative()).Add(spacing)
	}
	return positions
}

// justifyOffset returns the leading offset before the first item.
func justifyOffset(mode MainAxisAlignment, free Px, count int) Px {
	if free <= 0 || count == 0 {
		return 0
	}

	switch mode {
	case MainEnd:
		return free
	case MainCenter:
		return free / 2
	case MainSpaceAround:
		return free.Div(int32(count * 2))
	case MainSpaceEvenly:
		return free.Div(int32(count + 1))
	default: // MainStart, MainSpaceBetween
		return 0
	}
}

// justifySpacing returns the extra gap inserted between adjacent items.
func justifySpacing(mode MainAxisAlignment, free Px, count int) Px {
	if free <= 0 || count <= 1 {
		return 0
	}

	switch mode {
	case MainSpaceBetween:
		return free.Div(int32(count - 1))
	case MainSpaceAround:
		return free.Div(int32(count))
	case MainSpaceEvenly:
		return free.Div(int32(count + 1))
	default: // MainStart, MainEnd, MainCenter
		return 0
	}
}

// AlignOffset returns the cross-axis offset of an item of length item inside
// a line of thickness cross. Stretch and Start both align to the start edge.
func AlignOffset(mode CrossAxisAlignment, cross, item Px) Px {
	switch mode {
	case CrossEnd:
		return cross.SubFloor(item)
	case CrossCenter:
		return cross.SubFloor(item) / 2
	default: // CrossStart, CrossStretch
		return 0
	}
}
