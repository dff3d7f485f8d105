package components

import (
	"testing"

	tessera "github.com/grindlemire/go-tessera"
)

func TestLeftPressInside(t *testing.T) {
	moved := func(x, y tessera.Px) tessera.CursorEvent {
		return tessera.CursorEvent{Content: tessera.PointerMoved{Position: tessera.Pos(x, y)}}
	}
	press := tessera.CursorEvent{Content: tessera.Pressed{Button: tessera.MouseLeft}}
	left := tessera.CursorEvent{Content: tessera.PointerLeft{}}
	inside := pointer{pos: tessera.Pos(5, 5), known: true, seen: true}
	outside := pointer{pos: tessera.Pos(50, 50), known: true, seen: true}

	type tc struct {
		cursor    tessera.Position
		hasCursor bool
		events    []tessera.CursorEvent
		last      pointer
		want      bool
	}

	tests := map[string]tc{
		"no moves uses frame cursor": {
			cursor: tessera.Pos(5, 5), hasCursor: true,
			events: []tessera.CursorEvent{press},
			want:   true,
		},
		"no moves and no cursor": {
			events: []tessera.CursorEvent{press},
		},
		"move then press inside": {
			events: []tessera.CursorEvent{moved(5, 5), press},
			want:   true,
		},
		"press inside then move out": {
			cursor: tessera.Pos(50, 50), hasCursor: true,
			events: []tessera.CursorEvent{press, moved(50, 50)},
			last:   inside,
			want:   true,
		},
		"press outside then move in": {
			cursor: tessera.Pos(5, 5), hasCursor: true,
			events: []tessera.CursorEvent{press, moved(5, 5)},
			last:   outside,
		},
		"press before move with no history": {
			cursor: tessera.Pos(5, 5), hasCursor: true,
			events: []tessera.CursorEvent{press, moved(5, 5)},
		},
		"press after leave": {
			events: []tessera.CursorEvent{moved(5, 5), left, press},
		},
		"right button": {
			events: []tessera.CursorEvent{moved(5, 5), {Content: tessera.Pressed{Button: tessera.MouseRight}}},
		},
		"release only": {
			events: []tessera.CursorEvent{moved(5, 5), {Content: tessera.Released{Button: tessera.MouseLeft}}},
		},
	}

	bounds := tessera.NewRect(0, 0, 10, 10)
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			in := &tessera.StateHandlerInput{
				CursorPosition: tt.cursor,
				HasCursor:      tt.hasCursor,
				CursorEvents:   tt.events,
			}
			got, end := leftPressInside(in, bounds, tt.last)
			if got != tt.want {
				t.Errorf("leftPressInside() = %v, want %v", got, tt.want)
			}
			want := pointer{pos: tt.cursor, known: tt.hasCursor, seen: true}
			if end != want {
				t.Errorf("end pointer = %+v, want %+v", end, want)
			}
		})
	}
}

func TestSwitch_PressRemembersPointerAcrossFrames(t *testing.T) {
	state := NewSwitchState(false)
	entry := func(ui *tessera.Composer) {
		Switch(ui, SwitchArgs{State: state})
	}

	computeFrame(t, screen, nil, entry)
	computeFrameAt(t, screen, tessera.Pos(20, 20), true, []tessera.CursorEvent{
		{Content: tessera.PointerMoved{Position: tessera.Pos(20, 20)}},
	}, entry)
	// The press arrives while the pointer is still over the switch; it then
	// leaves within the same frame.
	computeFrameAt(t, screen, tessera.Pos(400, 400), true, []tessera.CursorEvent{
		{Content: tessera.Pressed{Button: tessera.MouseLeft}},
		{Content: tessera.PointerMoved{Position: tessera.Pos(400, 400)}},
	}, entry)

	if !state.Checked() {
		t.Error("Checked() = false, want the press inside to toggle")
	}
}

func TestCheckbox_PressOutsideThenMoveInIgnored(t *testing.T) {
	state := NewCheckboxState(false)
	entry := func(ui *tessera.Composer) {
		Checkbox(ui, CheckboxArgs{State: state})
	}

	computeFrameAt(t, screen, tessera.Pos(400, 400), true, []tessera.CursorEvent{
		{Content: tessera.PointerMoved{Position: tessera.Pos(400, 400)}},
	}, entry)
	computeFrameAt(t, screen, tessera.Pos(10, 10), true, []tessera.CursorEvent{
		{Content: tessera.Pressed{Button: tessera.MouseLeft}},
		{Content: tessera.PointerMoved{Position: tessera.Pos(10, 10)}},
	}, entry)

	if state.Checked() {
		t.Error("Checked() = true, want a press outside the box ignored")
	}
}
