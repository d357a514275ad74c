package control

import (
	"sort"

	"github.com/go-drift/control/pkg/surface"
)

// Privileged states mirrored into the disabled and hidden properties.
const (
	StateDisabled = "disabled"
	StateHidden   = "hidden"
)

// AddState marks name present, paints it, and sets the name property to
// true. No-op if already present.
func (c *Control) AddState(name string) {
	if c.disposed || c.HasState(name) {
		return
	}
	c.states[name] = struct{}{}
	c.paintState(name, true)
	c.SetProperties(Options{name: true})
}

// RemoveState clears name, unpaints it, and sets the name property to
// false. No-op if absent.
func (c *Control) RemoveState(name string) {
	if c.disposed || !c.HasState(name) {
		return
	}
	delete(c.states, name)
	c.paintState(name, false)
	c.SetProperties(Options{name: false})
}

// ToggleState adds name if absent, removes it otherwise.
func (c *Control) ToggleState(name string) {
	if c.HasState(name) {
		c.RemoveState(name)
	} else {
		c.AddState(name)
	}
}

// HasState reports whether name is present.
func (c *Control) HasState(name string) bool {
	_, ok := c.states[name]
	return ok
}

// States returns the present states in sorted order.
func (c *Control) States() []string {
	out := make([]string, 0, len(c.states))
	for s := range c.states {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Enable removes the disabled state and emits enable. No-op when enabled.
func (c *Control) Enable() {
	if c.disposed || !c.IsDisabled() {
		return
	}
	c.RemoveState(StateDisabled)
	c.Emit(EventEnable)
}

// Disable adds the disabled state and emits disable. No-op when disabled.
func (c *Control) Disable() {
	if c.disposed || c.IsDisabled() {
		return
	}
	c.AddState(StateDisabled)
	c.Emit(EventDisable)
}

// IsDisabled reports whether the disabled state is present.
func (c *Control) IsDisabled() bool {
	return c.HasState(StateDisabled)
}

// SetDisabled calls Disable or Enable.
func (c *Control) SetDisabled(disabled bool) {
	if disabled {
		c.Disable()
	} else {
		c.Enable()
	}
}

// Show removes the hidden state and emits show. No-op when shown.
func (c *Control) Show() {
	if c.disposed || !c.IsHidden() {
		return
	}
	c.RemoveState(StateHidden)
	c.Emit(EventShow)
}

// Hide adds the hidden state and emits hide. No-op when hidden.
func (c *Control) Hide() {
	if c.disposed || c.IsHidden() {
		return
	}
	c.AddState(StateHidden)
	c.Emit(EventHide)
}

// Toggle flips visibility.
func (c *Control) Toggle() {
	if c.IsHidden() {
		c.Show()
	} else {
		c.Hide()
	}
}

// IsHidden reports whether the hidden state is present.
func (c *Control) IsHidden() bool {
	return c.HasState(StateHidden)
}

// SetHidden calls Hide or Show.
func (c *Control) SetHidden(hidden bool) {
	if hidden {
		c.Hide()
	} else {
		c.Show()
	}
}

// RepaintStates syncs the disabled and hidden presentation from the full
// state (changes == nil) or from the changed keys only.
func (c *Control) RepaintStates(changes Changes) {
	if changes == nil || changes.Has(StateDisabled) {
		c.mirrorState(StateDisabled, c.disabled)
		c.paintState(StateDisabled, c.disabled)
	}
	if changes == nil || changes.Has(StateHidden) {
		c.mirrorState(StateHidden, c.hidden)
		c.paintState(StateHidden, c.hidden)
	}
}

func (c *Control) mirrorState(name string, on bool) {
	if on {
		c.states[name] = struct{}{}
	} else {
		delete(c.states, name)
	}
}

func (c *Control) paintState(name string, on bool) {
	if c.main == nil {
		return
	}
	classes := surface.StateClasses(c.env.Config, c, name)
	if on {
		if name == StateDisabled {
			c.main.SetAttr(StateDisabled, StateDisabled)
		}
		c.main.AddClass(classes...)
		return
	}
	if name == StateDisabled {
		c.main.RemoveAttr(StateDisabled)
	}
	c.main.RemoveClass(classes...)
}
