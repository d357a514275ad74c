// Package control provides the base every concrete widget extends.
//
// A Control owns a presentation node, a property bag, a set of named states,
// an ordered list of child controls, and an event channel. It runs a fixed
// lifecycle: construction and option application, initialization, a lazy
// first render followed by repaints, and disposal. Each step runs at most
// once and emits notifications at well-defined points.
//
// # Widgets
//
// Concrete widgets embed *Control and pass themselves as hooks:
//
//	type Button struct {
//	    *control.Control
//	}
//
//	func NewButton(env *control.Environment, opts control.Options) *Button {
//	    b := &Button{}
//	    b.Control = control.New(env, "Button", opts, b)
//	    return b
//	}
//
//	func (b *Button) InitStructure(c *control.Control) {
//	    c.Main().AppendChild(surface.NewNode("span"))
//	}
//
// Hooks run inside New, before the embedded pointer is assigned, so they
// receive the *Control explicitly. For the same reason, notifications
// emitted during New (propertychange from options, beforeinit, init,
// afterinit) carry the *Control as their target; later ones carry the
// widget. The optional hooks are Initializer,
// StructureBuilder, Repainter, and MainCreator.
//
// # Notifications
//
// beforeinit, init, afterinit, beforerender, afterrender, beforedispose,
// afterdispose, propertychange, enable, disable, show, hide. Handlers passed
// as options named on<Type> (onPropertychange, onInit) are subscribed before
// any notification is emitted.
//
// # Threading
//
// Controls are NOT thread-safe. All operations, including notification
// delivery, are synchronous and must run on one goroutine.
package control
