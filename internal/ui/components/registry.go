package components

import (
	"sort"

	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

var defaultsByName = map[string]theme.ComponentTheme{
	AlertName:   AlertDefaults,
	BadgeName:   BadgeDefaults,
	BoxName:     BoxDefaults,
	ButtonName:  ButtonDefaults,
	CardName:    CardDefaults,
	DividerName: DividerDefaults,
	StackName:   StackDefaults,
	TextName:    TextDefaults,
}

// Names lists the themeable component names in sorted order.
func Names() []string {
	names := make([]string, 0, len(defaultsByName))
	for name := range defaultsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the default theme registered for name.
func Defaults(name string) (theme.ComponentTheme, bool) {
	ct, ok := defaultsByName[name]
	return ct, ok
}
