// Package theme holds the fixed set of accent themes the page can switch between.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ID identifies one of the accent themes. The zero value is Blue.
type ID int

const (
	Blue ID = iota
	Purple
	Orange
)

// ErrUnknown is returned by Parse for names outside the registry.
var ErrUnknown = errors.New("unknown theme")

// Tokens are the CSS classes a theme contributes to the page.
type Tokens struct {
	Primary string // accent text
	Bar     string // skill bar fill
	Badge   string // technology badges
	Swatch  string // theme picker button
}

// Palette is the terminal rendition of a theme.
type Palette struct {
	Primary lipgloss.AdaptiveColor
	Bar     lipgloss.AdaptiveColor
	BadgeFg lipgloss.AdaptiveColor
	BadgeBg lipgloss.AdaptiveColor
	Swatch  lipgloss.Color
}

type entry struct {
	name    string
	tokens  Tokens
	palette Palette
}

var registry = [...]entry{
	Blue: {
		name: "blue",
		tokens: Tokens{
			Primary: "text-blue-600",
			Bar:     "bg-blue-600",
			Badge:   "bg-blue-100 text-blue-700 dark:bg-blue-900 dark:text-blue-300",
			Swatch:  "bg-blue-600",
		},
		palette: Palette{
			Primary: lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
			Bar:     lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#2563EB"},
			BadgeFg: lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"},
			BadgeBg: lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
			Swatch:  lipgloss.Color("#2563EB"),
		},
	},
	Purple: {
		name: "purple",
		tokens: Tokens{
			Primary: "text-purple-600",
			Bar:     "bg-purple-600",
			Badge:   "bg-purple-100 text-purple-700 dark:bg-purple-900 dark:text-purple-300",
			Swatch:  "bg-purple-600",
		},
		palette: Palette{
			Primary: lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#C084FC"},
			Bar:     lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#9333EA"},
			BadgeFg: lipgloss.AdaptiveColor{Light: "#7E22CE", Dark: "#D8B4FE"},
			BadgeBg: lipgloss.AdaptiveColor{Light: "#F3E8FF", Dark: "#581C87"},
			Swatch:  lipgloss.Color("#9333EA"),
		},
	},
	Orange: {
		name: "orange",
		tokens: Tokens{
			Primary: "text-orange-600",
			Bar:     "bg-orange-600",
			Badge:   "bg-orange-100 text-orange-700 dark:bg-orange-900 dark:text-orange-300",
			Swatch:  "bg-orange-500",
		},
		palette: Palette{
			Primary: lipgloss.AdaptiveColor{Light: "#EA580C", Dark: "#FB923C"},
			Bar:     lipgloss.AdaptiveColor{Light: "#EA580C", Dark: "#EA580C"},
			BadgeFg: lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FDBA74"},
			BadgeBg: lipgloss.AdaptiveColor{Light: "#FFEDD5", Dark: "#7C2D12"},
			Swatch:  lipgloss.Color("#F97316"),
		},
	},
}

// All returns every theme in swatch order.
func All() []ID {
	return []ID{Blue, Purple, Orange}
}

// Lookup returns the CSS tokens for id.
func Lookup(id ID) Tokens {
	return registry[id].tokens
}

// PaletteFor returns the terminal colors for id.
func PaletteFor(id ID) Palette {
	return registry[id].palette
}

// String returns the lowercase theme name used in URLs and flags.
func (id ID) String() string {
	if id < 0 || int(id) >= len(registry) {
		return fmt.Sprintf("theme(%d)", int(id))
	}
	return registry[id].name
}

// Parse maps a theme name back to its ID. Matching ignores case and
// surrounding whitespace.
func Parse(s string) (ID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, e := range registry {
		if e.name == name {
			return ID(i), nil
		}
	}
	return Blue, fmt.Errorf("%w: %q", ErrUnknown, s)
}
