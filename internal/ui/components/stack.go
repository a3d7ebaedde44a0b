package components

import (
	"strings"

	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// StackName is the theme key of Stack.
const StackName = "Stack"

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// StackProps are the props Stack resolves its theme against.
type StackProps struct {
	Direction Direction
}

// StackDefaults is the default theme of Stack. Config "gap" is used when
// the instance sets no gap of its own.
var StackDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": theme.Static(theme.StyleObject{}),
	},
	Config: theme.StaticConfig(map[string]any{
		"gap": 0,
	}),
}

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	themed
	children    []Renderable
	props       StackProps
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		themed:      themed{name: StackName, defaults: StackDefaults},
		children:    children,
		gap:         -1,
		constraints: Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children under ctx.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	resolved := s.resolve(ctx, s.props)
	style := Style(resolved.Slot("root"))

	gap := s.gap
	if gap < 0 {
		gap, _ = asInt(resolved.Config.Eval(s.props)["gap"])
	}
	gap = max(gap, 0)

	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effective, gap))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.props.Direction == DirectionHorizontal {
		content = s.join(views, gap, strings.Repeat(" ", gap), lipgloss.JoinHorizontal)
	} else {
		content = s.join(views, gap, strings.Repeat("\n", gap), lipgloss.JoinVertical)
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(content)
}

func (s *Stack) join(views []string, gap int, spacer string, joinFn func(lipgloss.Position, ...string) string) string {
	pos := s.crossAlign.toLipglossPosition()
	if gap <= 0 {
		return joinFn(pos, views...)
	}
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return joinFn(pos, parts...)
}

// mergeConstraints keeps the more restrictive of the stack's own
// constraints and the parent's.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}
	return result
}

// deriveChildConstraints splits the available width evenly between the
// children of a horizontal stack. Vertical stacks pass width through.
func (s *Stack) deriveChildConstraints(parent Constraints, gap int) Constraints {
	child := parent
	if s.props.Direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.props.Direction = dir
	return s
}

// WithGap sets the spacing between children. A negative gap falls back to
// the themed gap.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
