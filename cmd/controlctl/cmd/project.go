package cmd

import (
	"github.com/go-drift/control/cmd/controlctl/internal/project"
	"github.com/go-drift/control/pkg/config"
	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/declarative"
)

// rootType is the type of the control a layout is mounted into.
const rootType = "Page"

// resolveConfig returns the configuration for the current directory. Outside
// a Go module only --config and ./control.yaml are consulted.
func resolveConfig() (*config.Config, error) {
	root, err := project.FindRoot(".")
	if err != nil {
		if configPath != "" {
			return config.Load(configPath)
		}
		return config.LoadOptional(".")
	}
	resolved, err := project.Resolve(root, configPath)
	if err != nil {
		return nil, err
	}
	return resolved.Config, nil
}

// mountLayout loads the layout at path into a fresh environment. Every
// declared type is created as a plain control.
func mountLayout(path string) (*control.Control, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	layout, err := declarative.LoadLayout(path)
	if err != nil {
		return nil, err
	}

	env := control.NewEnvironment(cfg, logger)
	types := declarative.NewTypes()
	types.Fallback = declarative.Plain
	declarative.Install(env, types)

	return layout.Mount(env, rootType)
}
