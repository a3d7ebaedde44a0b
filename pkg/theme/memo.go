package theme

import (
	"context"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
)

// Memo caches the resolved theme of a single component instance.
//
// A cached result is reused while the component name, the defaults, the
// ambient theme and the props are unchanged. Defaults and ambient themes are
// compared by identity (the maps they hold), props by value. Computed slots
// therefore run again exactly when props or the ambient theme change.
//
// The cache keeps its own copy of map and slice props, so props edited in
// place after a call still count as a change. Pointer props are compared by
// what they point to and are not copied: change them by passing a new value.
//
// Embed one Memo per component instance; the zero value is ready to use.
// Results returned by Use are shared with the cache and must not be
// modified.
type Memo struct {
	mu     sync.Mutex
	entry  *memoEntry
	hits   uint64
	misses uint64
}

type memoEntry struct {
	name     string
	defaults ComponentTheme
	ambient  Theme
	props    any
	value    ResolvedComponentTheme
}

// Use returns the resolved theme for name, recomputing it only when one of
// its inputs changed since the previous call.
func (m *Memo) Use(ctx context.Context, name string, defaults ComponentTheme, props any) ResolvedComponentTheme {
	if ctx == nil {
		ctx = context.Background()
	}
	ambient := FromContext(ctx)
	log := zerolog.Ctx(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry != nil && m.entry.matches(name, defaults, ambient, props) {
		m.hits++
		log.Debug().Str("component", name).Msg("theme cache hit")
		return m.entry.value
	}

	m.misses++
	_, overridden := ambient.Components[name]
	log.Debug().
		Str("component", name).
		Bool("override", overridden).
		Msg("resolving component theme")

	value := resolveAgainst(ambient, name, defaults, props)
	m.entry = &memoEntry{
		name:     name,
		defaults: defaults,
		ambient:  ambient,
		props:    cloneValue(props),
		value:    value,
	}
	return value
}

// Reset drops the cached result.
func (m *Memo) Reset() {
	m.mu.Lock()
	m.entry = nil
	m.mu.Unlock()
}

// Stats reports how many calls were served from the cache and how many
// recomputed.
func (m *Memo) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

func (e *memoEntry) matches(name string, defaults ComponentTheme, ambient Theme, props any) bool {
	return e.name == name &&
		sameMap(e.defaults.Styles, defaults.Styles) &&
		e.defaults.Config.id == defaults.Config.id &&
		sameMap(e.ambient.Components, ambient.Components) &&
		reflect.DeepEqual(e.props, props)
}

// sameMap reports whether a and b are the same map. Empty maps are
// interchangeable. The entry keeps its maps alive, so their addresses
// cannot be reused while cached.
func sameMap[M ~map[K]V, K comparable, V any](a, b M) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
