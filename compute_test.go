package tessera

import (
	"reflect"
	"testing"
)

func TestCompute_EmptyTree(t *testing.T) {
	tree := NewComponentTree()
	commands, err := tree.Compute(NewSize(800, 600), Position{}, false, nil, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(commands) != 0 {
		t.Errorf("len(commands) = %d, want 0", len(commands))
	}
}

func TestCompute_PaddedContainer(t *testing.T) {
	tree := NewComponentTree()
	var box, child NodeID
	tree.Compose(func(ui *Composer) {
		box = padded(ui, "surface", FixedConstraint(400, 70), 10, func() {
			child = ui.Component("content", nil)
		})
	})

	if _, err := tree.Compute(NewSize(800, 600), Position{}, false, nil, nil); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantChild := NewConstraint(
		WrapBetween(Bound{}, Bounded(380)),
		WrapBetween(Bound{}, Bounded(50)),
	)
	if got := tree.Metadata(child).Effective; got != wantChild {
		t.Errorf("child Effective = %v, want %v", got, wantChild)
	}
	if got := tree.Metadata(box).Computed; got != (ComputedData{Width: 400, Height: 70}) {
		t.Errorf("container Computed = %+v, want {400 70}", got)
	}
	if got := tree.Metadata(child).Position; got != Pos(10, 10) {
		t.Errorf("child Position = %+v, want {10 10}", got)
	}
}

func TestCompute_PaddingNeverNegative(t *testing.T) {
	type tc struct {
		width    Px
		padding  Px
		expected Px
	}

	tests := map[string]tc{
		"regular":          {width: 100, padding: 10, expected: 80},
		"exactly consumed": {width: 20, padding: 10, expected: 0},
		"over consumed":    {width: 10, padding: 10, expected: 0},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			tree := NewComponentTree()
			var child NodeID
			tree.Compose(func(ui *Composer) {
				padded(ui, "box", FixedConstraint(tt.width, tt.width), tt.padding, func() {
					child = ui.Component("fill", func() {
						ui.Constrain(FillConstraint())
					})
				})
			})

			if _, err := tree.Compute(NewSize(500, 500), Position{}, false, nil, nil); err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if got := tree.Metadata(child).Effective; got != FixedConstraint(tt.expected, tt.expected) {
				t.Errorf("child Effective = %v, want %v", got, FixedConstraint(tt.expected, tt.expected))
			}
		})
	}
}

func TestCompute_SpaceEvenlyRow(t *testing.T) {
	tree := NewComponentTree()
	tree.Compose(func(ui *Composer) {
		row(ui, "row", NewConstraint(Fixed(400), Wrap()), MainSpaceEvenly, func() {
			leaf(ui, "a", 40, 40)
			leaf(ui, "b", 40, 40)
			leaf(ui, "c", 40, 40)
		})
	})

	commands, err := tree.Compute(NewSize(400, 300), Position{}, false, nil, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(commands) != 3 {
		t.Fatalf("len(commands) = %d, want 3", len(commands))
	}

	wantX := []Px{70, 180, 290}
	var gaps Px
	prevEnd := Px(0)
	for i, cmd := range commands {
		if cmd.Position.X != wantX[i] {
			t.Errorf("leaf %d x = %d, want %d", i, cmd.Position.X, wantX[i])
		}
		gaps += cmd.Position.X - prevEnd
		prevEnd = cmd.Position.X + cmd.Size.Width
	}
	gaps += 400 - prevEnd
	if gaps+120 != 400 {
		t.Errorf("gaps + content = %d, want 400", gaps+120)
	}
}

func TestCompute_PaintOrderAndAbsolutePositions(t *testing.T) {
	tree := NewComponentTree()
	tree.Compose(func(ui *Composer) {
		padded(ui, "outer", FixedConstraint(200, 200), 10, func() {
			padded(ui, "inner", FixedConstraint(100, 100), 5, func() {
				leaf(ui, "leaf", 10, 10)
			})
		})
	})

	commands, err := tree.Compute(NewSize(500, 500), Position{}, false, nil, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	type want struct {
		drawable string
		pos      Position
	}
	expected := []want{
		{drawable: "outer", pos: Pos(0, 0)},
		{drawable: "inner", pos: Pos(10, 10)},
		{drawable: "leaf", pos: Pos(15, 15)},
	}
	if len(commands) != len(expected) {
		t.Fatalf("len(commands) = %d, want %d", len(commands), len(expected))
	}
	for i, w := range expected {
		if commands[i].Drawable != w.drawable || commands[i].Position != w.pos {
			t.Errorf("commands[%d] = %v at %+v, want %v at %+v",
				i, commands[i].Drawable, commands[i].Position, w.drawable, w.pos)
		}
	}
}

func TestCompute_UnplacedSubtreeSkipped(t *testing.T) {
	tree := NewComponentTree()
	tree.Compose(func(ui *Composer) {
		ui.Component("root", func() {
			var kept NodeID
			ui.Measure(func(in *MeasureInput) (ComputedData, error) {
				computed, err := in.Measure(kept, in.EffectiveConstraint)
				if err != nil {
					return ComputedData{}, err
				}
				in.Place(kept, Position{})
				return computed, nil
			})
			kept = leaf(ui, "kept", 10, 10)
			ui.Component("forgotten", func() {
				leaf(ui, "orphan", 10, 10)
			})
		})
	})

	commands, err := tree.Compute(NewSize(100, 100), Position{}, false, nil, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(commands) != 1 || commands[0].Drawable != "kept" {
		t.Errorf("commands = %v, want only kept", commands)
	}
}

func TestCompute_OnPlacedReceivesAbsoluteBounds(t *testing.T) {
	tree := NewComponentTree()
	var got Rect
	tree.Compose(func(ui *Composer) {
		padded(ui, "outer", FixedConstraint(100, 100), 7, func() {
			ui.Component("probe", func() {
				ui.Constrain(FixedConstraint(20, 30))
				ui.OnPlaced(func(r Rect) { got = r })
			})
		})
	})

	if _, err := tree.Compute(NewSize(100, 100), Position{}, false, nil, nil); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got != NewRect(7, 7, 20, 30) {
		t.Errorf("OnPlaced bounds = %+v, want {7 7 20 30}", got)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	entry := func(ui *Composer) {
		padded(ui, "surface", FixedConstraint(400, 70), 10, func() {
			row(ui, "row", NewConstraint(Fill(), Wrap()), MainSpaceAround, func() {
				leaf(ui, "a", 40, 40)
				leaf(ui, "b", 40, 40)
			})
		})
	}

	tree := NewComponentTree()
	run := func() []DrawCommand {
		tree.Compose(entry)
		defer tree.Clear()
		commands, err := tree.Compute(NewSize(640, 480), Pos(5, 5), true, nil, nil)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		return commands
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second frame = %v, want %v", second, first)
	}
}

func TestCompute_HandlersRunBeforeMeasurement(t *testing.T) {
	state := NewShared(Px(10))
	tree := NewComponentTree()
	var id NodeID
	tree.Compose(func(ui *Composer) {
		id = ui.Component("grow", func() {
			ui.StateHandler(func(in *StateHandlerInput) {
				if len(in.CursorEvents) > 0 {
					state.Set(50)
				}
			})
			ui.Measure(func(in *MeasureInput) (ComputedData, error) {
				w := state.Get()
				return ComputedData{Width: w, Height: w}, nil
			})
		})
	})

	events := []CursorEvent{{Content: Pressed{Button: MouseLeft}}}
	if _, err := tree.Compute(NewSize(100, 100), Position{}, false, events, nil); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := tree.Metadata(id).Computed.Width; got != 50 {
		t.Errorf("Computed.Width = %d, want 50", got)
	}
}

func TestCompute_ExtraTopLevelNodesIgnored(t *testing.T) {
	tree := NewComponentTree()
	tree.Compose(func(ui *Composer) {
		leaf(ui, "first", 10, 10)
		leaf(ui, "second", 10, 10)
	})

	commands, err := tree.Compute(NewSize(100, 100), Position{}, false, nil, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(commands) != 1 || commands[0].Drawable != "first" {
		t.Errorf("commands = %v, want only first", commands)
	}
}
