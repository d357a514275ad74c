package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/control/pkg/inspect"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print the control tree of a layout",
		Long: `Load a layout document, instantiate its controls and print the
resulting tree.

Each line shows the control type, id, child name and states. With --yaml the
full snapshot is printed instead, in the format used for golden files.`,
		Usage: "controlctl inspect <layout.yaml> [--yaml]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	var path string
	asYAML := false
	for _, arg := range args {
		switch arg {
		case "--yaml":
			asYAML = true
		default:
			if path != "" {
				return fmt.Errorf("unexpected argument %q", arg)
			}
			path = arg
		}
	}
	if path == "" {
		return fmt.Errorf("inspect requires a layout file")
	}

	root, err := mountLayout(path)
	if root != nil {
		defer root.Dispose()
	}
	if err != nil {
		return err
	}

	if !asYAML {
		fmt.Print(inspect.Tree(root))
		return nil
	}
	data, err := inspect.Capture(root).Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
