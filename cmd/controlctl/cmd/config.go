package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/control/cmd/controlctl/internal/project"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration controls are created with.

The project root is the nearest directory containing go.mod. Its control.yaml
is used when present; --config selects another file. Unset keys fall back to
the built-in defaults.`,
		Usage: "controlctl config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments")
	}
	root, err := project.FindRoot(".")
	if err != nil {
		return err
	}
	resolved, err := project.Resolve(root, configPath)
	if err != nil {
		return err
	}

	source := resolved.ConfigFile
	if source == "" {
		source = "(defaults)"
	}
	fmt.Printf("Project: %s (%s)\n", resolved.Name, resolved.ModulePath)
	fmt.Printf("Config:  %s\n", source)
	fmt.Println()

	data, err := resolved.Config.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
