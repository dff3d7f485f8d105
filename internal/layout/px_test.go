package layout

import (
	"math"
	"testing"
)

func TestPx_Saturating(t *testing.T) {
	type tc struct {
		got      Px
		expected Px
	}

	tests := map[string]tc{
		"add":               {got: Px(2).Add(3), expected: 5},
		"add saturates":     {got: MaxPx.Add(1), expected: MaxPx},
		"add saturates neg": {got: MinPx.Add(-1), expected: MinPx},
		"sub":               {got: Px(2).Sub(3), expected: -1},
		"sub saturates":     {got: MinPx.Sub(1), expected: MinPx},
		"mul":               {got: Px(4).Mul(3), expected: 12},
		"mul saturates":     {got: MaxPx.Mul(2), expected: MaxPx},
		"div":               {got: Px(7).Div(2), expected: 3},
		"div by zero":       {got: Px(7).Div(0), expected: 0},
		"sub floor":         {got: Px(5).SubFloor(20), expected: 0},
		"sub floor regular": {got: Px(20).SubFloor(5), expected: 15},
		"non negative":      {got: Px(-3).NonNegative(), expected: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %d, want %d", tt.got, tt.expected)
			}
		})
	}
}

func TestPxFromFloat(t *testing.T) {
	type tc struct {
		in       float64
		expected Px
	}

	tests := map[string]tc{
		"truncates":  {in: 12.9, expected: 12},
		"negative":   {in: -12.9, expected: -12},
		"nan":        {in: math.NaN(), expected: 0},
		"huge":       {in: 1e20, expected: MaxPx},
		"huge neg":   {in: -1e20, expected: MinPx},
		"exact zero": {in: 0, expected: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if got := PxFromFloat(tt.in); got != tt.expected {
				t.Errorf("PxFromFloat(%v) = %d, want %d", tt.in, got, tt.expected)
			}
		})
	}
}

func TestScaleFactor(t *testing.T) {
	t.Cleanup(func() { SetScaleFactor(1) })

	SetScaleFactor(2)
	if got := Dp(10).ToPx(); got != 20 {
		t.Errorf("Dp(10).ToPx() at 2x = %d, want 20", got)
	}
	if got := Px(20).ToDp(); got != 10 {
		t.Errorf("Px(20).ToDp() at 2x = %v, want 10", got)
	}

	SetScaleFactor(-1)
	SetScaleFactor(math.NaN())
	if got := ScaleFactor(); got != 2 {
		t.Errorf("ScaleFactor() after invalid sets = %v, want 2", got)
	}
}

func TestPosition_Arithmetic(t *testing.T) {
	p := Pos(10, 20).Add(Pos(1, 2)).Sub(Pos(5, 5)).Offset(-1, 1)
	if p != Pos(5, 18) {
		t.Errorf("position = %+v, want {5 18}", p)
	}
}
