package testing

import (
	"slices"

	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/event"
)

// LifecycleEvents lists the notifications every control emits.
var LifecycleEvents = []string{
	control.EventBeforeInit,
	control.EventInit,
	control.EventAfterInit,
	control.EventBeforeRender,
	control.EventAfterRender,
	control.EventBeforeDispose,
	control.EventAfterDispose,
	control.EventPropertyChange,
	control.EventEnable,
	control.EventDisable,
	control.EventShow,
	control.EventHide,
}

// Recorder records notifications as "id:type" entries in delivery order.
type Recorder struct {
	entries []string
	unsubs  []func()
}

// NewRecorder records LifecycleEvents from each root and its descendants.
func NewRecorder(roots ...control.Component) *Recorder {
	r := &Recorder{}
	for _, root := range roots {
		r.WatchTree(root, LifecycleEvents...)
	}
	return r
}

// Watch records the given notifications from c.
func (r *Recorder) Watch(c control.Component, events ...string) {
	id := c.ID()
	for _, typ := range events {
		r.unsubs = append(r.unsubs, c.On(typ, func(ev *event.Event, args ...any) {
			r.entries = append(r.entries, id+":"+ev.Type)
		}))
	}
}

// WatchTree records the given notifications from c and its current
// descendants.
func (r *Recorder) WatchTree(c control.Component, events ...string) {
	r.Watch(c, events...)
	for _, child := range c.Base().Children() {
		r.WatchTree(child, events...)
	}
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []string {
	return slices.Clone(r.entries)
}

// Reset clears the recorded entries.
func (r *Recorder) Reset() {
	r.entries = nil
}

// Stop unsubscribes from every watched control.
func (r *Recorder) Stop() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
}
