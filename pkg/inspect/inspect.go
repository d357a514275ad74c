// Package inspect captures control trees as comparable snapshots.
package inspect

import (
	"bytes"
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/control/pkg/control"
)

// Snapshot is the captured state of a control tree.
type Snapshot struct {
	Root *Node `yaml:"root"`
}

// Node is one captured control.
type Node struct {
	ID       string   `yaml:"id"`
	Type     string   `yaml:"type"`
	Name     string   `yaml:"name,omitempty"`
	Skin     string   `yaml:"skin,omitempty"`
	Phase    string   `yaml:"phase"`
	States   []string `yaml:"states,omitempty"`
	Classes  []string `yaml:"classes,omitempty"`
	Children []*Node  `yaml:"children,omitempty"`
}

// Capture snapshots root and its descendants.
func Capture(root control.Component) *Snapshot {
	if root == nil {
		return &Snapshot{}
	}
	return &Snapshot{Root: capture(root.Base())}
}

func capture(c *control.Control) *Node {
	n := &Node{
		ID:     c.ID(),
		Type:   c.Type(),
		Name:   c.ChildName(),
		Skin:   c.Skin(),
		Phase:  c.Phase().String(),
		States: c.States(),
	}
	if c.IsRendered() && c.Main() != nil {
		n.Classes = c.Main().Classes()
	}
	for _, child := range c.Children() {
		n.Children = append(n.Children, capture(child.Base()))
	}
	return n
}

// Marshal encodes s as YAML.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &s, nil
}

// Diff returns a line diff from expected to s, or "" when they encode the
// same.
func (s *Snapshot) Diff(expected *Snapshot) string {
	a, _ := expected.Marshal()
	b, _ := s.Marshal()
	return Diff(string(a), string(b))
}

// Diff returns a line diff between two texts: "-" lines only in expected,
// "+" lines only in actual, and unchanged lines indented. It returns ""
// when the texts are equal.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(expected, actual)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("--- expected\n+++ actual\n")
	for _, df := range diffs {
		prefix := "  "
		switch df.Type {
		case dmp.DiffDelete:
			prefix = "- "
		case dmp.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(df.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Tree renders root as an indented outline, one control per line:
//
//	Form signup
//	  Input ui8785926 "email" [disabled]
func Tree(root control.Component) string {
	var sb strings.Builder
	if root != nil {
		writeTree(&sb, Capture(root).Root, 0)
	}
	return sb.String()
}

func writeTree(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Type)
	sb.WriteByte(' ')
	sb.WriteString(n.ID)
	if n.Name != "" {
		fmt.Fprintf(sb, " %q", n.Name)
	}
	if len(n.States) > 0 {
		fmt.Fprintf(sb, " [%s]", strings.Join(n.States, " "))
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		writeTree(sb, child, depth+1)
	}
}
