package profile

import (
	"strings"

	"github.com/repohue/repohue/internal/palette"
	"github.com/repohue/repohue/internal/resolve"
)

// DefaultElementSlots is the built-in element layout: every themeable
// element and the palette slot it takes by default. Each assignment is
// congruous with the key's classification.
var DefaultElementSlots = map[string]string{
	"titleBar.activeBackground":      "primaryActiveBg",
	"titleBar.activeForeground":      "primaryActiveFg",
	"titleBar.inactiveBackground":    "primaryInactiveBg",
	"titleBar.inactiveForeground":    "primaryInactiveFg",
	"tab.activeBackground":           "secondaryActiveBg",
	"tab.activeForeground":           "secondaryActiveFg",
	"tab.inactiveBackground":         "secondaryInactiveBg",
	"tab.inactiveForeground":         "secondaryInactiveFg",
	"activityBar.background":         "tertiaryBg",
	"activityBar.foreground":         "tertiaryFg",
	"activityBar.inactiveForeground": "secondaryInactiveFg",
	"statusBar.background":           "quaternaryBg",
	"statusBar.foreground":           "quaternaryFg",
	"statusBarItem.remoteBackground": "tertiaryBg",
	"statusBarItem.remoteForeground": "tertiaryFg",
}

// Default returns the built-in profile: primary and tertiary surfaces take
// the repository color, secondary and quaternary the branch color, and
// foreground slots get fixed text colors that read on both.
func Default() *Profile {
	p := New("default")
	for key, slot := range DefaultElementSlots {
		p.Elements[key] = slot
	}
	for _, slot := range palette.CanonicalSlots {
		switch {
		case palette.IsSlotForeground(slot) && palette.IsSlotInactive(slot):
			p.Slots[slot] = resolve.Direct("#8B9AAE")
		case palette.IsSlotForeground(slot):
			p.Slots[slot] = resolve.Direct("#E6EDF3")
		case strings.HasPrefix(slot, "primary") || slot == "tertiaryBg":
			p.Slots[slot] = resolve.FromSource(resolve.SourceRepoColor)
		default:
			p.Slots[slot] = resolve.FromSource(resolve.SourceBranchColor)
		}
	}
	return p
}

// FromColor builds an ad-hoc profile that paints the default background
// surfaces with a single color. Raw color strings in configuration resolve
// through this instead of a named profile.
func FromColor(color string) *Profile {
	p := New(color)
	for key, slot := range DefaultElementSlots {
		if !palette.IsSlotBackground(slot) {
			continue
		}
		p.Elements[key] = slot
		p.Slots[slot] = resolve.Direct(color)
	}
	return p
}
