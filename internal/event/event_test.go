package event

import "testing"

type countingListener struct {
	seen []EventType
}

func (c *countingListener) OnEvent(e Event) {
	c.seen = append(c.seen, e.Type)
}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &countingListener{}, &countingListener{}
	d.Subscribe(WaveCleared, a)
	d.Subscribe(WaveCleared, b)
	d.Subscribe(RoundLost, a)

	d.Dispatch(Event{Type: WaveCleared})
	d.Dispatch(Event{Type: RoundLost})
	d.Unsubscribe(WaveCleared, a)
	d.Dispatch(Event{Type: WaveCleared})

	if len(a.seen) != 2 || a.seen[0] != WaveCleared || a.seen[1] != RoundLost {
		t.Errorf("a saw %v", a.seen)
	}
	if len(b.seen) != 2 {
		t.Errorf("b saw %v, want two WaveCleared", b.seen)
	}
}

func TestRecorderDrain(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.SubscribeAll(rec)

	d.Dispatch(Event{Type: EntitySpawned, Data: EntityDescriptor{ID: 1}})
	d.Dispatch(Event{Type: ScoreChanged, Data: ScoreUpdate{Score: 10, Wave: 1}})

	got := rec.Drain()
	if len(got) != 2 || got[0].Type != EntitySpawned || got[1].Type != ScoreChanged {
		t.Fatalf("Drain = %+v", got)
	}
	if upd := got[1].Data.(ScoreUpdate); upd.Score != 10 {
		t.Errorf("score = %d", upd.Score)
	}
	if again := rec.Drain(); len(again) != 0 {
		t.Errorf("second Drain = %+v, want empty", again)
	}
}
