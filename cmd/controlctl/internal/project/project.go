// Package project locates the Go module a controlctl invocation runs in and
// resolves its control.yaml.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/control/pkg/config"
)

// Resolved contains resolved project values.
type Resolved struct {
	Root       string
	ModulePath string
	Name       string
	// ConfigFile is the control.yaml that was read, or "" for defaults.
	ConfigFile string
	Config     *config.Config
}

// FindRoot walks up from dir to find go.mod.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// Resolve reads the module path of the project at root and its optional
// control.yaml. An explicit configPath overrides the project file.
func Resolve(root, configPath string) (*Resolved, error) {
	modulePath, err := ModulePath(root)
	if err != nil {
		return nil, err
	}
	r := &Resolved{
		Root:       root,
		ModulePath: modulePath,
		Name:       defaultName(modulePath, root),
	}

	if configPath == "" {
		candidate := filepath.Join(root, config.FileName)
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		}
	}
	if configPath == "" {
		r.Config = config.Default()
		return r, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	r.ConfigFile = configPath
	r.Config = cfg
	return r, nil
}

// ModulePath returns the module path declared in root/go.mod.
func ModulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path: %w", err)
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "controls"
	}
	return base
}
