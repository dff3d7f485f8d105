package tessera

import "testing"

func TestKeyboardState_PushAndDrain(t *testing.T) {
	k := NewKeyboardState()
	k.Push("a")
	k.Push("b")

	events := k.TakeEvents()
	if len(events) != 2 {
		t.Fatalf("len(TakeEvents()) = %d, want 2", len(events))
	}
	if events[0].Payload != "a" || events[1].Payload != "b" {
		t.Errorf("payloads = %v, %v, want a, b", events[0].Payload, events[1].Payload)
	}
	if got := k.TakeEvents(); len(got) != 0 {
		t.Errorf("second TakeEvents() = %v, want empty", got)
	}
}
