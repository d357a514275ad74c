package control_test

import (
	"fmt"

	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/event"
	"github.com/go-drift/control/pkg/surface"
)

// Button is a minimal widget built on Control.
type Button struct {
	*control.Control
}

func NewButton(env *control.Environment, opts control.Options) *Button {
	b := &Button{}
	b.Control = control.New(env, "Button", opts, b)
	return b
}

// InitStructure adds a label part on first render.
func (b *Button) InitStructure(c *control.Control) {
	label := surface.NewNode("span")
	label.AddClass(surface.PartClasses(c.Environment().Config, c, "label")...)
	c.Main().AppendChild(label)
}

// This example shows a widget's lifecycle, from construction to disposal.
func ExampleNew() {
	env := control.NewEnvironment(nil, nil)

	b := NewButton(env, control.Options{
		"id":       "save",
		"disabled": "true",
		"onPropertychange": func(ev *event.Event, args ...any) {
			changes := args[0].(control.Changes)
			fmt.Println("changed:", changes.Names())
		},
	})
	fmt.Println(b.ID(), b.IsDisabled())

	b.Render()
	fmt.Println(b.Main().Classes())

	b.Enable()
	b.Dispose()
	fmt.Println(b.IsDisposed())

	// Output:
	// changed: [disabled]
	// save true
	// [ui-ctrl ui-button ui-button-disabled state-disabled]
	// changed: [disabled]
	// true
}

// This example shows named children and delegation to the parent.
func ExampleControl_CallParent() {
	env := control.NewEnvironment(nil, nil)
	form := control.New(env, "Form", nil, nil)
	input := control.New(env, "Input", nil, nil)

	form.DefineMethod("submit", func(args ...any) any {
		return fmt.Sprintf("submitted %v", args)
	})
	form.AddChild(input, "name")

	fmt.Println(form.GetChild("name") == input)
	fmt.Println(input.CallParent("submit", "bob"))

	// Output:
	// true
	// submitted [bob]
}
