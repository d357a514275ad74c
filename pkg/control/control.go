package control

import (
	"github.com/go-drift/control/pkg/errors"
	"github.com/go-drift/control/pkg/event"
	"github.com/go-drift/control/pkg/surface"
)

// BaseType is the type name of the abstract base. It cannot be instantiated.
const BaseType = "Control"

// Notification types emitted by every control.
const (
	EventBeforeInit     = "beforeinit"
	EventInit           = "init"
	EventAfterInit      = "afterinit"
	EventBeforeRender   = "beforerender"
	EventAfterRender    = "afterrender"
	EventBeforeDispose  = "beforedispose"
	EventAfterDispose   = "afterdispose"
	EventPropertyChange = "propertychange"
	EventEnable         = "enable"
	EventDisable        = "disable"
	EventShow           = "show"
	EventHide           = "hide"
)

// Phase is a lifecycle position.
type Phase int

const (
	PhaseConstructed Phase = iota
	PhaseOptionsApplied
	PhasePreInit
	PhaseInitializing
	PhaseInitialized
	PhaseRendered
	PhaseDisposed
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructed:
		return "constructed"
	case PhaseOptionsApplied:
		return "options-applied"
	case PhasePreInit:
		return "pre-init"
	case PhaseInitializing:
		return "initializing"
	case PhaseInitialized:
		return "initialized"
	case PhaseRendered:
		return "rendered"
	case PhaseDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Initializer runs widget-specific setup during Initialize, after the
// control is registered and before the init notification.
type Initializer interface {
	Init(c *Control, options Options)
}

// StructureBuilder builds the presentation structure on first render.
type StructureBuilder interface {
	InitStructure(c *Control)
}

// Repainter replaces the default repaint. changes is nil on the first
// render. Implementations usually call c.RepaintStates(changes) as well.
type Repainter interface {
	Repaint(c *Control, changes Changes)
}

// MainCreator creates the main node when none is supplied in options.
type MainCreator interface {
	CreateMain(c *Control) *surface.Node
}

// Component is the capability surface shared by Control and every widget
// embedding it.
type Component interface {
	Base() *Control
	ID() string
	Type() string

	Render()
	Dispose()

	Get(name string) any
	Set(name string, value any)
	SetProperties(props Options)

	AddState(name string)
	RemoveState(name string)
	ToggleState(name string)
	HasState(name string) bool

	Enable()
	Disable()
	IsDisabled() bool
	Show()
	Hide()
	Toggle()
	IsHidden() bool

	On(typ string, h event.Handler) func()
	Emit(typ string, args ...any)
}

// Control is the base unit of composition.
type Control struct {
	env   *Environment
	self  Component
	hooks any

	typ       string
	id        string
	skin      string
	childName string
	disabled  bool
	hidden    bool

	props     map[string]any
	options   Options
	states    map[string]struct{}
	accessors map[string]accessor
	methods   map[string]Method

	children   []Component
	childIndex map[string]Component
	parent     *Control

	main          *surface.Node
	mainProvided  bool
	surfaceEvents []surfaceBinding
	surfaceSeq    uint64

	pluginOptions map[string]any
	events        *event.Channel
	disposers     []func()

	phase       Phase
	initialized bool
	rendered    bool
	disposing   bool
	disposed    bool
}

// New constructs a control of the given type and initializes it with
// options. hooks is usually the widget embedding the control; it may
// implement any of Initializer, StructureBuilder, Repainter, MainCreator,
// and Component. New panics with a contract error when env is nil or typ
// is empty or BaseType.
func New(env *Environment, typ string, options Options, hooks any) *Control {
	if env == nil {
		panic(errors.Contract("control.New", "", "environment is required"))
	}
	if typ == "" || typ == BaseType {
		panic(errors.Contract("control.New", "", "the %s base cannot be instantiated, only extended", BaseType))
	}

	c := &Control{
		env:       env,
		typ:       typ,
		hooks:     hooks,
		props:     make(map[string]any),
		accessors: make(map[string]accessor),
		methods:   make(map[string]Method),
	}
	c.self = c
	if comp, ok := hooks.(Component); ok && comp != nil {
		c.self = comp
	}
	// The outer component is not usable until New returns, so notifications
	// emitted during initialization target the base.
	c.events = event.NewChannel(c)

	c.DefineAccessor(StateDisabled, nil, func(v any) { c.SetDisabled(toBool(v)) })
	c.DefineAccessor(StateHidden, nil, func(v any) { c.SetHidden(toBool(v)) })

	c.Initialize(options)
	c.events.SetTarget(c.self)
	return c
}

// Base returns c. Widgets embedding *Control inherit it.
func (c *Control) Base() *Control { return c }

// Self returns the outermost component: the hooks value when it implements
// Component, otherwise c.
func (c *Control) Self() Component { return c.self }

// Environment returns the environment the control was created in.
func (c *Control) Environment() *Environment { return c.env }

// ID returns the control identifier.
func (c *Control) ID() string { return c.id }

// Type returns the widget type name.
func (c *Control) Type() string { return c.typ }

// Skin returns the skin name, or "".
func (c *Control) Skin() string { return c.skin }

// Main returns the presentation node.
func (c *Control) Main() *surface.Node { return c.main }

// Options returns a copy of the option snapshot taken at construction.
func (c *Control) Options() Options { return c.options.Clone() }

// Phase returns the current lifecycle phase.
func (c *Control) Phase() Phase {
	switch {
	case c.disposed:
		return PhaseDisposed
	case c.rendered:
		return PhaseRendered
	default:
		return c.phase
	}
}

// IsInitialized reports whether Initialize has completed.
func (c *Control) IsInitialized() bool { return c.initialized }

// IsRendered reports whether Render has run.
func (c *Control) IsRendered() bool { return c.rendered }

// IsDisposed reports whether Dispose has completed.
func (c *Control) IsDisposed() bool { return c.disposed }

// On subscribes h to typ notifications. Returns an unsubscribe function.
func (c *Control) On(typ string, h event.Handler) func() {
	return c.events.On(typ, h)
}

// Once subscribes h to the next typ notification.
func (c *Control) Once(typ string, h event.Handler) func() {
	return c.events.Once(typ, h)
}

// Off removes every subscriber for typ, or all subscribers when typ is "".
func (c *Control) Off(typ string) {
	c.events.Off(typ)
}

// SetHandler installs the instance handler for typ, called before subscribers.
func (c *Control) SetHandler(typ string, h event.Handler) {
	c.events.SetHandler(typ, h)
}

// Emit delivers a typ notification with target Self().
func (c *Control) Emit(typ string, args ...any) {
	c.events.Emit(typ, args...)
}
