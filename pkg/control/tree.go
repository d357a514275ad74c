package control

import (
	"slices"

	"github.com/go-drift/control/pkg/errors"
	"github.com/go-drift/control/pkg/surface"
)

// AddChild appends child, detaching it from any previous parent first.
// A name (explicit, or the child's childName property) indexes the child
// for GetChild; a name already in use moves to the new child. Adding c to
// itself or to one of its descendants panics with a contract error.
func (c *Control) AddChild(child Component, name ...string) {
	if c.disposed || child == nil {
		return
	}
	cb := child.Base()
	for p := c; p != nil; p = p.parent {
		if p == cb {
			panic(errors.Contract("control.AddChild", c.id, "cannot add %s to its own subtree", cb.id))
		}
	}

	if cb.parent != nil {
		cb.parent.RemoveChild(child)
	}

	n := cb.childName
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	if n != "" {
		if prev, ok := c.childIndex[n]; ok {
			prev.Base().childName = ""
		}
		cb.childName = n
		c.childIndex[n] = child
	}

	c.children = append(c.children, child)
	cb.parent = c
}

// RemoveChild detaches child, removing every entry for it. Missing
// children are ignored.
func (c *Control) RemoveChild(child Component) {
	if child == nil {
		return
	}
	cb := child.Base()
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i].Base() != cb {
			continue
		}
		c.children = slices.Delete(c.children, i, i+1)
		if cb.childName != "" && c.childIndex[cb.childName] != nil &&
			c.childIndex[cb.childName].Base() == cb {
			delete(c.childIndex, cb.childName)
		}
		if cb.parent == c {
			cb.parent = nil
		}
	}
}

// GetChild returns the child registered under name, or nil.
func (c *Control) GetChild(name string) Component {
	if child, ok := c.childIndex[name]; ok {
		return child
	}
	return nil
}

// Children returns the children in insertion order.
func (c *Control) Children() []Component {
	return slices.Clone(c.children)
}

// Parent returns the parent component, or nil.
func (c *Control) Parent() Component {
	if c.parent == nil {
		return nil
	}
	return c.parent.self
}

// ChildName returns the name under which the control is indexed by its
// parent, or "".
func (c *Control) ChildName() string { return c.childName }

// InitChildren scans container (Main() when nil) for declaratively marked
// nodes and adds the created controls as children, passing down a copy of
// the construction options.
func (c *Control) InitChildren(container *surface.Node) error {
	if container == nil {
		container = c.main
	}
	if c.env.Scanner == nil {
		return &errors.ControlError{
			Op:      "control.InitChildren",
			Kind:    errors.KindScan,
			Control: c.id,
			Err:     errors.New("no scanner installed"),
		}
	}
	return c.env.Scanner.Scan(container, c, c.options.Clone())
}

// DefineMethod registers a named operation callable by descendants through
// CallParent.
func (c *Control) DefineMethod(name string, m Method) {
	if m == nil {
		delete(c.methods, name)
		return
	}
	c.methods[name] = m
}

// HasMethod reports whether name is defined.
func (c *Control) HasMethod(name string) bool {
	_, ok := c.methods[name]
	return ok
}

// Call invokes a method defined on c. A missing method panics with a
// lookup error.
func (c *Control) Call(name string, args ...any) any {
	m, ok := c.methods[name]
	if !ok {
		panic(errors.Lookup("control.Call", c.id, name))
	}
	return m(args...)
}

// CallParent invokes name on the parent. It panics with a contract error
// when there is no parent and a lookup error when the parent lacks name.
func (c *Control) CallParent(name string, args ...any) any {
	if c.parent == nil {
		panic(errors.Contract("control.CallParent", c.id, "no parent to call %q on", name))
	}
	m, ok := c.parent.methods[name]
	if !ok {
		panic(errors.Lookup("control.CallParent", c.parent.id, name))
	}
	return m(args...)
}
