package testing

import (
	"fmt"

	"github.com/go-drift/control/pkg/control"
)

// Finder locates controls in a control tree.
type Finder interface {
	// Evaluate returns all matching controls under root (depth-first pre-order).
	Evaluate(root control.Component) []control.Component
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	controls []control.Component
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() control.Component {
	if len(r.controls) == 0 {
		panic(fmt.Sprintf("Finder found no controls: %s", r.description()))
	}
	return r.controls[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() control.Component {
	if len(r.controls) == 0 {
		return nil
	}
	return r.controls[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) control.Component {
	if index < 0 || index >= len(r.controls) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.controls), r.description()))
	}
	return r.controls[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []control.Component {
	return r.controls
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.controls)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.controls) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// Find evaluates finder against root.
func Find(root control.Component, finder Finder) FinderResult {
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{controls: finder.Evaluate(root), finder: finder}
}

type predicateFinder struct {
	fn   func(control.Component) bool
	desc string
}

func (f *predicateFinder) Evaluate(root control.Component) []control.Component {
	var out []control.Component
	var visit func(c control.Component)
	visit = func(c control.Component) {
		if f.fn(c) {
			out = append(out, c)
		}
		for _, child := range c.Base().Children() {
			visit(child)
		}
	}
	visit(root)
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByType matches controls of the given type name.
func ByType(typ string) Finder {
	return &predicateFinder{
		fn:   func(c control.Component) bool { return c.Type() == typ },
		desc: fmt.Sprintf("ByType(%s)", typ),
	}
}

// ByID matches the control with the given identifier.
func ByID(id string) Finder {
	return &predicateFinder{
		fn:   func(c control.Component) bool { return c.ID() == id },
		desc: fmt.Sprintf("ByID(%q)", id),
	}
}

// ByName matches controls indexed under name by their parent.
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(c control.Component) bool { return c.Base().ChildName() == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByState matches controls with the named state present.
func ByState(state string) Finder {
	return &predicateFinder{
		fn:   func(c control.Component) bool { return c.HasState(state) },
		desc: fmt.Sprintf("ByState(%q)", state),
	}
}

// ByPredicate matches controls satisfying fn.
func ByPredicate(fn func(control.Component) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}
