// Package palette implements the palette slot grammar: the canonical slot
// set, lexical element key classification, and the compatibility rules
// between slots and element keys.
package palette

import "strings"

// Sentinel slot names. Neither appears in the correspondence tables and
// both are wildcard-compatible with every element key.
const (
	// SlotNone marks an element with no palette assignment.
	SlotNone = "none"

	// SlotFixed marks an element carrying an explicit override color,
	// exempt from congruity checks.
	SlotFixed = "__fixed__"
)

// CanonicalSlots is the fixed total order over the twelve palette slots.
// The tertiary and quaternary tiers are neutral-only and carry no
// active/inactive qualifier.
var CanonicalSlots = []string{
	"primaryActiveFg",
	"primaryActiveBg",
	"primaryInactiveFg",
	"primaryInactiveBg",
	"secondaryActiveFg",
	"secondaryActiveBg",
	"secondaryInactiveFg",
	"secondaryInactiveBg",
	"tertiaryFg",
	"tertiaryBg",
	"quaternaryFg",
	"quaternaryBg",
}

var slotOrder = func() map[string]int {
	order := make(map[string]int, len(CanonicalSlots))
	for i, slot := range CanonicalSlots {
		order[slot] = i
	}
	return order
}()

// SlotIndex returns the canonical position of a slot, or -1 for slots
// outside the canonical set (including the sentinels).
func SlotIndex(slot string) int {
	if i, ok := slotOrder[slot]; ok {
		return i
	}
	return -1
}

// IsCanonicalSlot reports whether slot is one of the twelve canonical slots.
func IsCanonicalSlot(slot string) bool {
	return SlotIndex(slot) >= 0
}

// IsSlotForeground reports whether a slot names a foreground color role.
func IsSlotForeground(slot string) bool {
	return strings.HasSuffix(slot, "Fg")
}

// IsSlotBackground reports whether a slot names a background color role.
func IsSlotBackground(slot string) bool {
	return strings.HasSuffix(slot, "Bg")
}

// IsSlotActive reports whether a slot carries the Active qualifier.
// "Inactive" contains "Active", hence the guard.
func IsSlotActive(slot string) bool {
	return strings.Contains(slot, "Active") && !strings.Contains(slot, "Inactive")
}

// IsSlotInactive reports whether a slot carries the Inactive qualifier.
func IsSlotInactive(slot string) bool {
	return strings.Contains(slot, "Inactive")
}

// IsSlotNeutral reports whether a slot carries neither activity qualifier.
// The tertiary and quaternary tiers are always neutral.
func IsSlotNeutral(slot string) bool {
	return !IsSlotActive(slot) && !IsSlotInactive(slot)
}

// CorrespondingPaletteSlot swaps the Fg/Bg suffix of a slot name. This is
// a structural transform, not a table lookup: it works on any slot ending
// in one of the two suffixes and reports false for SlotNone or slots
// lacking a suffix.
func CorrespondingPaletteSlot(slot string) (string, bool) {
	if slot == SlotNone {
		return "", false
	}
	switch {
	case strings.HasSuffix(slot, "Fg"):
		return strings.TrimSuffix(slot, "Fg") + "Bg", true
	case strings.HasSuffix(slot, "Bg"):
		return strings.TrimSuffix(slot, "Bg") + "Fg", true
	}
	return "", false
}

// CorrespondingActiveInactiveSlot swaps the Active/Inactive qualifier
// inside a slot name. Neutral slots have no counterpart across this axis,
// so tertiary and quaternary slots always report false.
func CorrespondingActiveInactiveSlot(slot string) (string, bool) {
	if slot == SlotNone {
		return "", false
	}
	switch {
	case strings.Contains(slot, "Inactive"):
		return strings.Replace(slot, "Inactive", "Active", 1), true
	case strings.Contains(slot, "Active"):
		return strings.Replace(slot, "Active", "Inactive", 1), true
	}
	return "", false
}
