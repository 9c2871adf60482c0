// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event is a fire-and-forget notification. Data carries one of the payload types in types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for several event types.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe removes the first registration of listener for eventType.
// Func listeners cannot be compared and are never removed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, isFunc := listener.(ListenerFunc); isFunc {
		return
	}
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if _, isFunc := l.(ListenerFunc); isFunc {
				continue
			}
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to every subscriber of its type.
// A nil dispatcher drops events.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
