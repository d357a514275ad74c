package surface

import (
	"strings"

	"github.com/go-drift/control/pkg/config"
)

// Identity is what the class helper needs to know about a control.
type Identity interface {
	ID() string
	Type() string
	Skin() string
}

// PartClasses returns the identity and skin classes for a control's main
// node (part == "") or for one of its named parts.
//
//	main: ui-ctrl ui-{type} [skin-{skin} skin-{skin}-{type}]
//	part: ui-{type}-{part} [skin-{skin}-{type}-{part}]
func PartClasses(cfg *config.Config, c Identity, part string) []string {
	typ := strings.ToLower(c.Type())
	skin := c.Skin()
	var classes []string
	if part != "" {
		classes = append(classes, join(cfg.UIClassPrefix, typ, part))
		if skin != "" {
			classes = append(classes, join(cfg.SkinClassPrefix, skin, typ, part))
		}
		return classes
	}
	classes = append(classes,
		join(cfg.UIClassPrefix, cfg.UIClassControl),
		join(cfg.UIClassPrefix, typ),
	)
	if skin != "" {
		classes = append(classes,
			join(cfg.SkinClassPrefix, skin),
			join(cfg.SkinClassPrefix, skin, typ),
		)
	}
	return classes
}

// StateClasses returns the classes marking state on a control's main node.
//
//	ui-{type}-{state} state-{state} [skin-{skin}-{state} skin-{skin}-{type}-{state}]
func StateClasses(cfg *config.Config, c Identity, state string) []string {
	typ := strings.ToLower(c.Type())
	classes := []string{
		join(cfg.UIClassPrefix, typ, state),
		join(cfg.StateClassPrefix, state),
	}
	if skin := c.Skin(); skin != "" {
		classes = append(classes,
			join(cfg.SkinClassPrefix, skin, state),
			join(cfg.SkinClassPrefix, skin, typ, state),
		)
	}
	return classes
}

// DOMID returns the presentation id for a control or one of its parts.
func DOMID(cfg *config.Config, c Identity, part string) string {
	id := join(cfg.IDAttrPrefix, c.ID())
	if part != "" {
		id = join(id, part)
	}
	return id
}

func join(parts ...string) string {
	return strings.Join(parts, "-")
}
