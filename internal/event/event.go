// internal/event/event.go
package event

// EventType identifies an event.
type EventType string

// Event carries a typed payload in Data.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. Nothing is queued between ticks.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every known event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllTypes {
		d.Subscribe(t, listener)
	}
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Recorder collects everything it hears until Drain.
type Recorder struct {
	events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

// Drain returns the recorded events in arrival order and forgets them.
func (r *Recorder) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}
