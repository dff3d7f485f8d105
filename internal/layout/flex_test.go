package layout

import (
	"slices"
	"testing"
)

func TestJustifyOffsets(t *testing.T) {
	type tc struct {
		mode      MainAxisAlignment
		available Px
		sizes     []Px
		expected  []Px
	}

	three := []Px{40, 40, 40}

	tests := map[string]tc{
		"start": {
			mode:      MainStart,
			available: 400,
			sizes:     three,
			expected:  []Px{0, 40, 80},
		},
		"center": {
			mode:      MainCenter,
			available: 400,
			sizes:     three,
			expected:  []Px{140, 180, 220},
		},
		"end": {
			mode:      MainEnd,
			available: 400,
			sizes:     three,
			expected:  []Px{280, 320, 360},
		},
		"space evenly": {
			mode:      MainSpaceEvenly,
			available: 400,
			sizes:     three,
			expected:  []Px{70, 180, 290},
		},
		"space between": {
			mode:      MainSpaceBetween,
			available: 400,
			sizes:     three,
			expected:  []Px{0, 180, 360},
		},
		"space around": {
			mode:      MainSpaceAround,
			available: 400,
			sizes:     three,
			expected:  []Px{46, 179, 312},
		},
		"space between single item": {
			mode:      MainSpaceBetween,
			available: 400,
			sizes:     []Px{40},
			expected:  []Px{0},
		},
		"overflow packs at start": {
			mode:      MainEnd,
			available: 50,
			sizes:     three,
			expected:  []Px{0, 40, 80},
		},
		"empty": {
			mode:      MainCenter,
			available: 400,
			sizes:     nil,
			expected:  []Px{},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			got := JustifyOffsets(tt.mode, tt.available, tt.sizes)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("JustifyOffsets(%v) = %v, want %v", tt.mode, got, tt.expected)
			}
		})
	}
}

func TestAlignOffset(t *testing.T) {
	type tc struct {
		mode     CrossAxisAlignment
		cross    Px
		item     Px
		expected Px
	}

	tests := map[string]tc{
		"start":              {mode: CrossStart, cross: 50, item: 20, expected: 0},
		"center":             {mode: CrossCenter, cross: 50, item: 20, expected: 15},
		"end":                {mode: CrossEnd, cross: 50, item: 20, expected: 30},
		"stretch":            {mode: CrossStretch, cross: 50, item: 20, expected: 0},
		"oversized centered": {mode: CrossCenter, cross: 10, item: 20, expected: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if got := AlignOffset(tt.mode, tt.cross, tt.item); got != tt.expected {
				t.Errorf("AlignOffset() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAlignment_Offset(t *testing.T) {
	type tc struct {
		anchor   Alignment
		expected Position
	}

	container := NewSize(100, 50)
	child := NewSize(20, 10)

	tests := map[string]tc{
		"top start":     {anchor: TopStart, expected: Pos(0, 0)},
		"top center":    {anchor: TopCenter, expected: Pos(40, 0)},
		"top end":       {anchor: TopEnd, expected: Pos(80, 0)},
		"center start":  {anchor: CenterStart, expected: Pos(0, 20)},
		"center":        {anchor: Center, expected: Pos(40, 20)},
		"center end":    {anchor: CenterEnd, expected: Pos(80, 20)},
		"bottom start":  {anchor: BottomStart, expected: Pos(0, 40)},
		"bottom center": {anchor: BottomCenter, expected: Pos(40, 40)},
		"bottom end":    {anchor: BottomEnd, expected: Pos(80, 40)},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if got := tt.anchor.Offset(container, child); got != tt.expected {
				t.Errorf("Offset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
