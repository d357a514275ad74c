// Package surface provides the presentation handles controls own.
//
// A Node is an in-memory element: a tag, an id, attributes, an ordered class
// list, children, and node-level listeners. A Document is the live surface
// nodes are attached to. Controls never inspect nodes beyond this API.
package surface

import (
	"slices"
	"sort"
)

// Listener handles a node-level event.
type Listener func(ev *NodeEvent)

// NodeEvent is dispatched to node listeners.
type NodeEvent struct {
	Type   string
	Target *Node
	Detail any
}

type nodeListener struct {
	id uint64
	fn Listener
}

// Node is a presentation handle.
type Node struct {
	tag       string
	id        string
	attrs     map[string]string
	classes   []string
	children  []*Node
	parent    *Node
	listeners map[string][]nodeListener
	nextID    uint64
}

// NewNode creates a detached node.
func NewNode(tag string) *Node {
	if tag == "" {
		tag = "div"
	}
	return &Node{
		tag:    tag,
		attrs:  make(map[string]string),
		nextID: 1,
	}
}

// Tag returns the node tag.
func (n *Node) Tag() string { return n.tag }

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// SetID sets the node id.
func (n *Node) SetID(id string) { n.id = id }

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	n.attrs[name] = value
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// AttrNames returns the attribute names in sorted order.
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddClass adds classes not already present, keeping insertion order.
func (n *Node) AddClass(names ...string) {
	for _, name := range names {
		if name == "" || slices.Contains(n.classes, name) {
			continue
		}
		n.classes = append(n.classes, name)
	}
}

// RemoveClass removes classes.
func (n *Node) RemoveClass(names ...string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// HasClass reports whether the class is present.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes, name)
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// AppendChild moves child to the end of n's children.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertBefore moves child in front of ref. A nil or foreign ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == n {
		return
	}
	child.Remove()
	i := slices.Index(n.children, ref)
	if ref == nil || i < 0 {
		n.AppendChild(child)
		return
	}
	child.parent = n
	n.children = slices.Insert(n.children, i, child)
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	p := n.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		c.Walk(fn)
	}
}

// AddEventListener subscribes fn to typ events on this node.
// Returns an unsubscribe function.
func (n *Node) AddEventListener(typ string, fn Listener) func() {
	if n.listeners == nil {
		n.listeners = make(map[string][]nodeListener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[typ] = append(n.listeners[typ], nodeListener{id: id, fn: fn})
	return func() {
		n.listeners[typ] = slices.DeleteFunc(n.listeners[typ], func(l nodeListener) bool {
			return l.id == id
		})
	}
}

// RemoveEventListeners removes every listener for typ.
func (n *Node) RemoveEventListeners(typ string) {
	delete(n.listeners, typ)
}

// ListenerCount returns the number of listeners for typ.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[typ])
}

// DispatchEvent calls the typ listeners of this node in order.
func (n *Node) DispatchEvent(typ string, detail any) {
	list := slices.Clone(n.listeners[typ])
	ev := &NodeEvent{Type: typ, Target: n, Detail: detail}
	for _, l := range list {
		l.fn(ev)
	}
}
