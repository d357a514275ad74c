package control

import (
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/go-drift/control/pkg/event"
	"github.com/go-drift/control/pkg/surface"
)

// Initialize applies options and runs the initialization sequence:
// beforeinit, identifier and main node assignment, registration, plugin
// activation, the Initializer hook, init and afterinit. It runs once; New
// calls it.
func (c *Control) Initialize(options Options) {
	if c.phase != PhaseConstructed || c.disposed {
		return
	}
	c.childIndex = make(map[string]Component)
	c.states = make(map[string]struct{})

	main := c.applyOptions(options)
	c.phase = PhaseOptionsApplied

	c.Emit(EventBeforeInit)
	c.phase = PhasePreInit

	if c.id == "" {
		c.id = c.env.IDs.Next(c.env.Config.IDPrefix)
	}
	switch {
	case main != nil:
		c.main = main
		c.mainProvided = true
	default:
		if mc, ok := c.hooks.(MainCreator); ok {
			c.main = mc.CreateMain(c)
		}
		if c.main == nil {
			c.main = c.env.Factory.CreateMain(c.typ)
		}
	}
	c.env.Registry.Add(c)
	c.phase = PhaseInitializing

	if len(c.pluginOptions) > 0 {
		c.env.Plugins.ActivateAll(c, c.pluginOptions)
	}
	if in, ok := c.hooks.(Initializer); ok {
		in.Init(c, c.options.Clone())
	}
	c.Emit(EventInit)
	c.Emit(EventAfterInit)

	c.initialized = true
	c.phase = PhaseInitialized
	c.env.Logger.Debug("control initialized",
		slog.String("id", c.id),
		slog.String("type", c.typ),
	)
}

// applyOptions subscribes on<Type> handlers, splits off the plugin and main
// options, applies the rest as properties and keeps them as the option
// snapshot. It returns the supplied main node, if any.
func (c *Control) applyOptions(options Options) *surface.Node {
	opts := options.Clone()
	for _, key := range opts.Keys() {
		typ, ok := handlerEvent(key)
		if !ok {
			continue
		}
		var h event.Handler
		switch fn := opts[key].(type) {
		case event.Handler:
			h = fn
		case func(*event.Event, ...any):
			h = fn
		default:
			continue
		}
		c.events.On(typ, h)
		delete(opts, key)
	}

	if p, ok := opts[PropPlugin].(map[string]any); ok {
		c.pluginOptions = p
	}
	var main *surface.Node
	if n, ok := opts[PropMain].(*surface.Node); ok {
		main = n
	}
	delete(opts, PropMain)

	c.SetProperties(opts)
	delete(opts, PropID)
	delete(opts, PropSkin)
	delete(opts, PropChildName)
	c.options = opts
	return main
}

// handlerEvent maps "onPropertychange" to "propertychange".
func handlerEvent(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, "on")
	if !ok || rest == "" {
		return "", false
	}
	if !unicode.IsUpper([]rune(rest)[0]) {
		return "", false
	}
	return firstLower(rest), true
}

// Render builds the presentation on the first call and repaints from the
// full state on every call. beforerender and afterrender fire once. A main
// node the control created is attached to the document body unless it
// already has a parent; a supplied main node is never moved.
func (c *Control) Render() {
	if c.disposed || c.phase < PhaseInitializing {
		return
	}
	first := !c.rendered
	if first {
		c.rendered = true
		c.Emit(EventBeforeRender)
		if sb, ok := c.hooks.(StructureBuilder); ok {
			sb.InitStructure(c)
		}
		if !c.mainProvided && c.main.Parent() == nil {
			c.env.Document.Attach(c.main)
		}
		if c.main.ID() == "" {
			c.main.SetID(surface.DOMID(c.env.Config, c, ""))
		}
		c.main.SetAttr(c.env.Config.InstanceAttr, c.id)
		c.main.AddClass(surface.PartClasses(c.env.Config, c, "")...)
		c.phase = PhaseRendered
	}
	c.repaint(nil)
	if first {
		c.Emit(EventAfterRender)
	}
}

func (c *Control) repaint(changes Changes) {
	if r, ok := c.hooks.(Repainter); ok {
		r.Repaint(c, changes)
		return
	}
	c.RepaintStates(changes)
}

// AppendTo moves the main node into container and renders if needed.
func (c *Control) AppendTo(container *surface.Node) {
	if c.disposed || container == nil {
		return
	}
	container.AppendChild(c.main)
	if !c.rendered {
		c.self.Render()
	}
}

// InsertBefore moves the main node in front of ref and renders if needed.
// ref must be attached to a parent node.
func (c *Control) InsertBefore(ref *surface.Node) {
	if c.disposed || ref == nil || ref.Parent() == nil {
		return
	}
	ref.Parent().InsertBefore(c.main, ref)
	if !c.rendered {
		c.self.Render()
	}
}

// Dispose tears the control down: beforedispose, disposal of every child
// (last first), release of surface listeners, detachment from the parent,
// the registry and (unless it was supplied as an option) the main node's
// container, afterdispose, plugin release, removal of subscribers,
// and the OnDispose callbacks. Repeated and re-entrant calls are no-ops.
func (c *Control) Dispose() {
	if c.disposed || c.disposing {
		return
	}
	c.disposing = true

	c.Emit(EventBeforeDispose)

	for len(c.children) > 0 {
		last := len(c.children) - 1
		child := c.children[last]
		c.children = c.children[:last]
		child.Dispose()
	}
	clear(c.childIndex)

	c.ClearSurfaceEvents(nil)
	if c.parent != nil {
		c.parent.RemoveChild(c.self)
		c.parent = nil
	}
	if c.main != nil && !c.mainProvided {
		c.main.Remove()
	}
	c.env.Registry.Remove(c)

	c.Emit(EventAfterDispose)

	c.env.Plugins.DisposePlugin(c)
	c.events.Off("")

	for i := len(c.disposers) - 1; i >= 0; i-- {
		if fn := c.disposers[i]; fn != nil {
			fn()
		}
	}
	c.disposers = nil

	c.disposed = true
	c.disposing = false
	c.phase = PhaseDisposed
	c.env.Logger.Debug("control disposed", slog.String("id", c.id))
}

// OnDispose registers fn to run at the end of Dispose, most recent first.
// Returns a function that unregisters it. On a disposed control fn runs
// immediately.
func (c *Control) OnDispose(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	if c.disposed {
		fn()
		return func() {}
	}
	index := len(c.disposers)
	c.disposers = append(c.disposers, fn)
	return func() {
		if index < len(c.disposers) {
			c.disposers[index] = nil
		}
	}
}

type surfaceBinding struct {
	id    uint64
	node  *surface.Node
	typ   string
	unsub func()
}

// AddSurfaceEvent listens for typ on node (Main() when nil) until the
// listener is removed or the control is disposed. Returns a function that
// removes it.
func (c *Control) AddSurfaceEvent(node *surface.Node, typ string, fn surface.Listener) func() {
	if node == nil {
		node = c.main
	}
	if c.disposed || node == nil || fn == nil {
		return func() {}
	}
	c.surfaceSeq++
	id := c.surfaceSeq
	c.surfaceEvents = append(c.surfaceEvents, surfaceBinding{
		id:    id,
		node:  node,
		typ:   typ,
		unsub: node.AddEventListener(typ, fn),
	})
	return func() {
		for i, b := range c.surfaceEvents {
			if b.id == id {
				b.unsub()
				c.surfaceEvents = slices.Delete(c.surfaceEvents, i, i+1)
				return
			}
		}
	}
}

// RemoveSurfaceEvent removes every listener the control added for typ on
// node (Main() when nil). An empty typ matches every type.
func (c *Control) RemoveSurfaceEvent(node *surface.Node, typ string) {
	if node == nil {
		node = c.main
	}
	kept := c.surfaceEvents[:0]
	for _, b := range c.surfaceEvents {
		if b.node == node && (typ == "" || b.typ == typ) {
			b.unsub()
			continue
		}
		kept = append(kept, b)
	}
	c.surfaceEvents = kept
}

// ClearSurfaceEvents removes every listener the control added on node, or
// on every node when node is nil.
func (c *Control) ClearSurfaceEvents(node *surface.Node) {
	if node != nil {
		c.RemoveSurfaceEvent(node, "")
		return
	}
	for _, b := range c.surfaceEvents {
		b.unsub()
	}
	c.surfaceEvents = nil
}
