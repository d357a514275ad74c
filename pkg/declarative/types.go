// Package declarative builds controls from marked presentation nodes and
// from YAML layout documents.
//
// A node marked with the configured type attribute (data-ui-type by
// default) becomes a control of that type. Its other data-ui-* attributes
// become options, with dashed names turned into camel case:
//
//	<div data-ui-type="Button" data-ui-id="save" data-ui-label-text="Save">
//
// creates a Button with options {id: "save", labelText: "Save"}.
package declarative

import (
	"sort"

	"github.com/go-drift/control/pkg/control"
)

// Constructor creates a control of type typ. The options always carry the
// node as "main".
type Constructor func(env *control.Environment, typ string, options control.Options) control.Component

// Plain creates a bare control of any type, with no widget behavior.
func Plain(env *control.Environment, typ string, options control.Options) control.Component {
	return control.New(env, typ, options, nil)
}

// Types maps type names to constructors.
type Types struct {
	ctors map[string]Constructor

	// Fallback, when set, builds types with no registered constructor.
	Fallback Constructor
}

// NewTypes creates an empty type table.
func NewTypes() *Types {
	return &Types{ctors: make(map[string]Constructor)}
}

// Register binds typ to ctor. A nil ctor removes the binding.
func (t *Types) Register(typ string, ctor Constructor) {
	if ctor == nil {
		delete(t.ctors, typ)
		return
	}
	t.ctors[typ] = ctor
}

// Lookup returns the constructor for typ, falling back to Fallback.
func (t *Types) Lookup(typ string) (Constructor, bool) {
	if ctor, ok := t.ctors[typ]; ok {
		return ctor, true
	}
	if t.Fallback != nil {
		return t.Fallback, true
	}
	return nil, false
}

// Names returns the registered type names in sorted order.
func (t *Types) Names() []string {
	names := make([]string, 0, len(t.ctors))
	for n := range t.ctors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
