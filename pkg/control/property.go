package control

import (
	"fmt"
	"maps"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Built-in property names.
const (
	PropID        = "id"
	PropType      = "type"
	PropSkin      = "skin"
	PropChildName = "childName"
	PropMain      = "main"
	PropPlugin    = "plugin"
)

// Options is a property batch or a set of constructor options.
type Options map[string]any

// Clone returns a shallow copy. Cloning nil yields an empty map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	return out
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Change records one property transition.
type Change struct {
	Name     string
	OldValue any
	NewValue any
}

// Changes is the change set carried by propertychange notifications.
type Changes map[string]Change

// Has reports whether name changed.
func (c Changes) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Names returns the changed property names in sorted order.
func (c Changes) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Method is a named operation other controls can call through CallParent.
type Method func(args ...any) any

type accessor struct {
	get func() any
	set func(value any)
}

// DefineAccessor registers a getter and/or setter for a property. Names are
// canonicalized, so "child-name" and "childName" share an accessor. A nil
// function leaves that direction on the raw property.
func (c *Control) DefineAccessor(name string, get func() any, set func(value any)) {
	c.accessors[canonicalName(name)] = accessor{get: get, set: set}
}

// Get returns a property value through its getter, or the raw value.
func (c *Control) Get(name string) any {
	if a, ok := c.accessors[canonicalName(name)]; ok && a.get != nil {
		return a.get()
	}
	return c.raw(name)
}

// Set assigns a property through its setter, or through SetProperties.
func (c *Control) Set(name string, value any) {
	if a, ok := c.accessors[canonicalName(name)]; ok && a.set != nil {
		a.set(value)
		return
	}
	c.SetProperties(Options{name: value})
}

// SetProperties applies a batch of property values.
//
// id and childName are honored only until the control is registered, skin
// only until it is rendered; type, main and plugin are never properties.
// disabled and hidden are coerced to bool, so "true" means true. Values
// identical to the current ones are skipped. When anything changed, the
// control repaints (if rendered) and emits propertychange with the Changes.
// props is not modified.
func (c *Control) SetProperties(props Options) {
	if c.disposed || len(props) == 0 {
		return
	}

	if c.phase < PhaseInitializing {
		if v, ok := props[PropID]; ok {
			if id := toString(v); id != "" {
				c.id = id
			}
		}
		if v, ok := props[PropChildName]; ok {
			c.childName = toString(v)
		}
	}
	if !c.rendered {
		if v, ok := props[PropSkin]; ok {
			c.skin = toString(v)
		}
	}

	changes := make(Changes)
	for _, name := range props.Keys() {
		if isReserved(name) {
			continue
		}
		value := props[name]
		if name == StateDisabled || name == StateHidden {
			value = toBool(value)
		}
		old := c.raw(name)
		if identical(old, value) {
			continue
		}
		c.rawSet(name, value)
		changes[name] = Change{Name: name, OldValue: old, NewValue: value}
	}
	if len(changes) == 0 {
		return
	}

	if changes.Has(StateDisabled) {
		c.mirrorState(StateDisabled, c.disabled)
	}
	if changes.Has(StateHidden) {
		c.mirrorState(StateHidden, c.hidden)
	}

	if c.rendered {
		c.repaint(changes)
	}
	c.Emit(EventPropertyChange, changes)
}

func isReserved(name string) bool {
	switch name {
	case PropID, PropType, PropSkin, PropChildName, PropMain, PropPlugin:
		return true
	}
	return false
}

func (c *Control) raw(name string) any {
	switch name {
	case PropID:
		return c.id
	case PropType:
		return c.typ
	case PropSkin:
		return c.skin
	case PropChildName:
		return c.childName
	case StateDisabled:
		return c.disabled
	case StateHidden:
		return c.hidden
	default:
		return c.props[name]
	}
}

func (c *Control) rawSet(name string, value any) {
	switch name {
	case StateDisabled:
		c.disabled = value.(bool)
	case StateHidden:
		c.hidden = value.(bool)
	default:
		if value == nil {
			delete(c.props, name)
			return
		}
		c.props[name] = value
	}
}

// identical compares by value for comparable values and by reference for
// maps and slices. Functions and other incomparable values never match.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}

// toBool coerces loosely typed flags: strings mean true when they contain
// "true" in any case, which keeps "false" false.
func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case nil:
		return false
	case string:
		return strings.Contains(strings.ToLower(b), "true")
	default:
		return strings.Contains(strings.ToLower(fmt.Sprint(b)), "true")
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// canonicalName turns "child-name" and "childName" into "ChildName".
func canonicalName(name string) string {
	if name == "" {
		return ""
	}
	var sb strings.Builder
	upper := true
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// firstLower lowercases the first rune of s.
func firstLower(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
