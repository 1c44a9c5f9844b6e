// Package view owns the page's interactive state and projects it, together
// with the résumé content, into a host-independent Page.
//
// A View holds two independent flags: the dark-mode flag and the active
// theme. Hosts change them only through SelectTheme and ToggleDarkMode.
// The single side effect, marking the host's root element as dark, goes
// through the RootMarker the host supplies at Mount.
package view

import (
	"sync"

	"github.com/Dev-Moura/portfolio/internal/theme"
)

// State is a snapshot of a view's flags. The zero value is the state of a
// freshly mounted view.
type State struct {
	DarkMode    bool
	ActiveTheme theme.ID
}

// RootMarker applies or removes the dark presentation marker on the host's
// top-level element. Implementations must be idempotent.
type RootMarker interface {
	SetDarkPresentation(on bool)
}

// MarkerFunc adapts a function to RootMarker.
type MarkerFunc func(on bool)

// SetDarkPresentation calls f(on).
func (f MarkerFunc) SetDarkPresentation(on bool) { f(on) }

// View is one mounted page view.
type View struct {
	mu     sync.Mutex
	state  State
	marker RootMarker
}

// Mount creates a view in the default state and syncs the marker once.
func Mount(marker RootMarker) *View {
	v := &View{marker: marker}
	v.syncDarkMode()
	return v
}

// State returns the current flags.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SelectTheme makes id the active theme. DarkMode is left alone.
func (v *View) SelectTheme(id theme.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ActiveTheme = id
}

// ToggleDarkMode flips DarkMode and syncs the marker.
func (v *View) ToggleDarkMode() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.DarkMode = !v.state.DarkMode
	v.syncDarkMode()
}

// syncDarkMode must be called with mu held, or before v is shared.
func (v *View) syncDarkMode() {
	if v.marker != nil {
		v.marker.SetDarkPresentation(v.state.DarkMode)
	}
}
