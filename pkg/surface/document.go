package surface

// Document is the live surface main nodes are attached to.
type Document struct {
	Body *Node
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	return &Document{Body: NewNode("body")}
}

// Contains reports whether n is attached to the document.
func (d *Document) Contains(n *Node) bool {
	return d.Body.Contains(n)
}

// Attach appends n to the body.
func (d *Document) Attach(n *Node) {
	d.Body.AppendChild(n)
}

// Factory creates main nodes for controls.
type Factory interface {
	CreateMain(typ string) *Node
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(typ string) *Node

// CreateMain calls f.
func (f FactoryFunc) CreateMain(typ string) *Node { return f(typ) }

// DefaultFactory creates a generic div container for every type.
var DefaultFactory Factory = FactoryFunc(func(string) *Node {
	return NewNode("div")
})
