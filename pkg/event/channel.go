// Package event provides the per-instance notification channel used by controls.
//
// Delivery is synchronous. A handler that panics interrupts delivery to the
// handlers after it, and the panic reaches the caller of Emit.
package event

// Event is the notification record passed as the first argument to handlers.
type Event struct {
	// Type is the notification name (e.g., "propertychange").
	Type string
	// Target is the entity that emitted the notification.
	Target any
}

// Handler receives a notification and the extra arguments given to Emit.
type Handler func(ev *Event, args ...any)

type listener struct {
	id      uint64
	handler Handler
	once    bool
}

// Channel is a publish/subscribe hub owned by a single target.
//
// Channel is NOT thread-safe. Like the control that owns it, it must only be
// used from one goroutine.
type Channel struct {
	target    any
	direct    map[string]Handler
	listeners map[string][]listener
	nextID    uint64
}

// NewChannel creates a channel whose events carry target.
func NewChannel(target any) *Channel {
	return &Channel{
		target:    target,
		direct:    make(map[string]Handler),
		listeners: make(map[string][]listener),
		nextID:    1,
	}
}

// Target returns the entity events are emitted for.
func (c *Channel) Target() any {
	return c.target
}

// SetTarget replaces the target carried by future events.
func (c *Channel) SetTarget(target any) {
	c.target = target
}

// SetHandler installs the instance handler for typ, which runs before every
// subscriber. Passing nil removes it. Off does not touch instance handlers.
func (c *Channel) SetHandler(typ string, h Handler) {
	if h == nil {
		delete(c.direct, typ)
		return
	}
	c.direct[typ] = h
}

// On subscribes h to typ. Returns an unsubscribe function.
func (c *Channel) On(typ string, h Handler) func() {
	return c.add(typ, h, false)
}

// Once subscribes h to the next typ notification only.
// Returns an unsubscribe function.
func (c *Channel) Once(typ string, h Handler) func() {
	return c.add(typ, h, true)
}

func (c *Channel) add(typ string, h Handler, once bool) func() {
	if h == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[typ] = append(c.listeners[typ], listener{id: id, handler: h, once: once})
	return func() {
		c.remove(typ, id)
	}
}

func (c *Channel) remove(typ string, id uint64) {
	list := c.listeners[typ]
	for i, l := range list {
		if l.id == id {
			next := make([]listener, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(c.listeners, typ)
			} else {
				c.listeners[typ] = next
			}
			return
		}
	}
}

// Off removes every subscriber for typ. An empty typ removes all subscribers
// of every type.
func (c *Channel) Off(typ string) {
	if typ == "" {
		c.listeners = make(map[string][]listener)
		return
	}
	delete(c.listeners, typ)
}

// Count returns the number of subscribers for typ, excluding the instance handler.
func (c *Channel) Count(typ string) int {
	return len(c.listeners[typ])
}

// Emit delivers a typ notification: first to the instance handler, then to
// every subscriber in subscription order. Subscribers added while the
// notification is being delivered are not called for it.
func (c *Channel) Emit(typ string, args ...any) {
	ev := &Event{Type: typ, Target: c.target}

	if h := c.direct[typ]; h != nil {
		h(ev, args...)
	}

	list := c.listeners[typ]
	if len(list) == 0 {
		return
	}
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		if l.once {
			c.remove(typ, l.id)
		}
		l.handler(ev, args...)
	}
}
