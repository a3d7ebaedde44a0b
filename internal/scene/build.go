package scene

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
)

// Tree is a built scene.
type Tree struct {
	// Root lays out the top-level nodes vertically.
	Root *components.Stack
	// Buttons lists every button in document order.
	Buttons []*components.Button
	// Themed lists every component that resolves a theme.
	Themed []components.Themed
}

// Build turns a validated scene into components.
func Build(s *Scene) (*Tree, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	tree := &Tree{}
	children, err := tree.buildAll(s.Components, "components")
	if err != nil {
		return nil, err
	}
	tree.Root = components.VStack(children...)
	tree.Themed = append([]components.Themed{tree.Root}, tree.Themed...)
	return tree, nil
}

func (t *Tree) buildAll(nodes []Node, field string) ([]components.Renderable, error) {
	built := make([]components.Renderable, 0, len(nodes))
	for i, node := range nodes {
		r, err := t.build(node, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		built = append(built, r)
	}
	return built, nil
}

type alertProps struct {
	Variant string
	Icon    string
}

type stackProps struct {
	Direction string
	Gap       *int
}

type spacerProps struct {
	Width  int
	Height int
}

type dividerProps struct {
	Char  string
	Width int
}

func (t *Tree) build(node Node, field string) (components.Renderable, error) {
	children, err := t.buildAll(node.Children, field+".children")
	if err != nil {
		return nil, err
	}
	propsField := field + ".props"

	switch node.Kind {
	case components.TextName:
		var p components.TextProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		return t.track(components.NewText(node.Text).WithTone(p.Tone).WithBold(p.Bold)), nil

	case components.ButtonName:
		var p components.ButtonProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		button := components.NewButton(node.Text).
			WithVariant(p.Variant).
			WithActive(p.Active).
			WithDisabled(p.Disabled)
		t.Buttons = append(t.Buttons, button)
		return t.track(button), nil

	case components.BadgeName:
		var p components.BadgeProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		return t.track(components.NewBadge(node.Text).WithVariant(p.Variant)), nil

	case components.AlertName:
		var p alertProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		alert := components.NewAlert(node.Text).WithTitle(node.Title).WithVariant(p.Variant)
		if p.Icon != "" {
			alert.WithIcon(p.Icon)
		}
		return t.track(alert), nil

	case components.BoxName:
		if err := decodeProps(node.Props, &struct{}{}, propsField); err != nil {
			return nil, err
		}
		return t.track(components.NewBox(children...)), nil

	case components.CardName:
		if err := decodeProps(node.Props, &struct{}{}, propsField); err != nil {
			return nil, err
		}
		card := components.NewCard(children...).WithTitle(node.Title)
		if node.Footer != "" {
			card.WithFooter(t.track(components.NewText(node.Footer)))
		}
		return t.track(card), nil

	case components.StackName:
		var p stackProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		stack := components.NewStack(children...)
		switch p.Direction {
		case "", "vertical":
		case "horizontal":
			stack.WithDirection(components.DirectionHorizontal)
		default:
			return nil, themeerrors.NewValidationError(propsField+".direction", fmt.Sprintf("unknown direction %q", p.Direction), nil)
		}
		if p.Gap != nil {
			stack.WithGap(*p.Gap)
		}
		return t.track(stack), nil

	case components.DividerName:
		var p dividerProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		return t.track(components.NewDivider().WithChar(p.Char).WithWidth(p.Width)), nil

	case SpacerKind:
		var p spacerProps
		if err := decodeProps(node.Props, &p, propsField); err != nil {
			return nil, err
		}
		if p.Width == 0 && p.Height == 0 {
			p.Height = 1
		}
		return components.NewSpacer(p.Width, p.Height), nil

	case ProviderKind:
		preset, err := presets.Lookup(node.Preset)
		if err != nil {
			return nil, err
		}
		return components.NewProvider(preset, children...), nil
	}

	return nil, themeerrors.NewValidationError(field+".kind", fmt.Sprintf("unknown kind %q", node.Kind), nil)
}

func (t *Tree) track(c interface {
	components.Renderable
	components.Themed
}) components.Renderable {
	t.Themed = append(t.Themed, c)
	return c
}

// decodeProps converts the loosely typed props of a node into out. Keys are
// matched against the lowercased field names of out; unknown keys and
// mistyped values are errors.
func decodeProps(props map[string]any, out any, field string) error {
	if len(props) == 0 {
		return nil
	}

	data, err := yaml.Marshal(props)
	if err != nil {
		return themeerrors.NewValidationError(field, err.Error(), err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return themeerrors.NewValidationError(field, err.Error(), err)
	}
	return nil
}
