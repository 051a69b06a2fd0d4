package input

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventMouseButton, Button: ButtonLeft, Action: ActionPress})
	q.Push(Event{Type: EventMouseMove, X: 10, Y: 20})
	q.Push(Event{Type: EventKeyDown, Key: KeyG})

	if q.Len() != 3 {
		t.Fatalf("expected 3 pending events, got %d", q.Len())
	}

	got := q.Drain()
	want := []EventType{EventMouseButton, EventMouseMove, EventKeyDown}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Type != w {
			t.Errorf("event %d: type %v, want %v", i, got[i].Type, w)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, has %d", q.Len())
	}
}

func TestQueueDrainedSliceSurvivesPush(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventScroll, ScrollY: 1})

	drained := q.Drain()
	q.Push(Event{Type: EventQuit})

	if drained[0].Type != EventScroll {
		t.Errorf("pushing after Drain must not clobber drained events, got %v", drained[0].Type)
	}
	if next := q.Drain(); len(next) != 1 || next[0].Type != EventQuit {
		t.Errorf("unexpected second drain %+v", next)
	}
}

func TestQueueEmptyDrain(t *testing.T) {
	if got := NewQueue().Drain(); len(got) != 0 {
		t.Errorf("expected no events, got %d", len(got))
	}
}
