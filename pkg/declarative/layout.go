package declarative

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/control/pkg/config"
	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/errors"
	"github.com/go-drift/control/pkg/surface"
)

// Layout is a YAML document describing a tree of marked nodes.
//
//	version: v1.0.0
//	nodes:
//	  - type: Form
//	    id: signup
//	    children:
//	      - type: Input
//	        name: email
//	        props: {disabled: "true"}
type Layout struct {
	Version string     `yaml:"version"`
	Nodes   []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes one node. Type, ID, Name and Props become declarative
// attributes; nodes without a Type stay plain containers.
type NodeSpec struct {
	Tag      string            `yaml:"tag,omitempty"`
	Type     string            `yaml:"type,omitempty"`
	ID       string            `yaml:"id,omitempty"`
	Name     string            `yaml:"name,omitempty"`
	Class    []string          `yaml:"class,omitempty"`
	Props    map[string]string `yaml:"props,omitempty"`
	Children []NodeSpec        `yaml:"children,omitempty"`
}

// ParseLayout decodes a layout document and checks its version.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, layoutError(fmt.Errorf("failed to parse layout: %w", err))
	}
	if err := config.CheckVersion(l.Version); err != nil {
		return nil, layoutError(err)
	}
	return &l, nil
}

// LoadLayout reads and parses the layout file at path.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, layoutError(fmt.Errorf("failed to read %s: %w", path, err))
	}
	return ParseLayout(data)
}

// Build creates a detached container node holding the layout's node trees,
// marked with the attribute names of cfg.
func (l *Layout) Build(cfg *config.Config) *surface.Node {
	root := surface.NewNode("div")
	for _, spec := range l.Nodes {
		root.AppendChild(spec.build(cfg.UIPrefix))
	}
	return root
}

// Mount creates a rendered root control of type rootType in env, builds
// the layout inside its main node, and scans it with the environment's
// scanner. The root is returned even when scanning reports errors.
func (l *Layout) Mount(env *control.Environment, rootType string) (*control.Control, error) {
	root := control.New(env, rootType, nil, nil)
	root.Render()
	container := l.Build(env.Config)
	root.Main().AppendChild(container)
	return root, root.InitChildren(container)
}

func (s NodeSpec) build(prefix string) *surface.Node {
	n := surface.NewNode(s.Tag)
	attr := func(name, value string) {
		if value != "" {
			n.SetAttr(prefix+"-"+name, value)
		}
	}
	attr(AttrType, s.Type)
	attr("id", s.ID)
	attr("child-name", s.Name)
	for k, v := range s.Props {
		attr(Kebab(k), v)
	}
	n.AddClass(s.Class...)
	for _, child := range s.Children {
		n.AppendChild(child.build(prefix))
	}
	return n
}

func layoutError(err error) error {
	return &errors.ControlError{Op: "declarative.ParseLayout", Kind: errors.KindConfig, Err: err}
}
