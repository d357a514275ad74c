package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/control/cmd/controlctl/internal/browser"
	"github.com/go-drift/control/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "browse",
		Short: "Explore a layout interactively",
		Long: `Load a layout document and open an interactive browser over its
control tree.

The browser lists the controls, logs their notifications and shows a diff
against a baseline snapshot. Selected controls can be disabled, hidden,
rendered and disposed. Press ? for all key bindings.`,
		Usage: "controlctl browse <layout.yaml>",
		Run:   runBrowse,
	})
}

func runBrowse(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("browse requires exactly one layout file")
	}
	root, err := mountLayout(args[0])
	if err != nil {
		if root != nil {
			root.Dispose()
		}
		return err
	}
	defer root.Dispose()

	m := browser.New(root)
	errors.SetHandler(m.ErrorHandler())
	defer errors.SetHandler(nil)

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
