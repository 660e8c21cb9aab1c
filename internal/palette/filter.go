package palette

import "sort"

// IsSlotCompatibleWithKey reports whether a slot may be offered for an
// element key. SlotFixed is compatible with every key. Keys with no fg/bg
// classification accept either axis. Neutral slots fit any activity tier;
// an active slot is rejected only for inactive keys, and an inactive slot
// only for active keys.
//
// SlotNone is never asked through this predicate; callers exclude it
// upstream (see FilteredOptions).
func IsSlotCompatibleWithKey(slot, key string) bool {
	if slot == SlotFixed {
		return true
	}
	if IsForegroundElement(key) && !IsSlotForeground(slot) {
		return false
	}
	if IsBackgroundElement(key) && !IsSlotBackground(slot) {
		return false
	}
	if IsActiveElement(key) && IsSlotInactive(slot) {
		return false
	}
	if IsInactiveElement(key) && IsSlotActive(slot) {
		return false
	}
	return true
}

// IsSlotCongruousFgBg reports strict fg/bg agreement between an element
// key and a slot. Unlike compatibility there is no wildcard on the key
// side. The sentinels are exempt.
func IsSlotCongruousFgBg(key, slot string) bool {
	if slot == SlotNone || slot == SlotFixed {
		return true
	}
	return IsForegroundElement(key) == IsSlotForeground(slot) &&
		IsBackgroundElement(key) == IsSlotBackground(slot)
}

// IsSlotCongruousActiveInactive reports strict activity tier agreement
// between an element key and a slot. The sentinels are exempt.
func IsSlotCongruousActiveInactive(key, slot string) bool {
	if slot == SlotNone || slot == SlotFixed {
		return true
	}
	return IsActiveElement(key) == IsSlotActive(slot) &&
		IsInactiveElement(key) == IsSlotInactive(slot)
}

// FilteredOptions returns the candidate slots that may be offered for an
// element key, in canonical order with unknown slots appended in lexical
// order. SlotNone is never offered. currentSlot, when supplied, survives
// filtering even when incompatible, so an existing assignment is not
// silently dropped.
func FilteredOptions(key string, candidates []string, currentSlot string, filteringEnabled bool) []string {
	seen := make(map[string]struct{}, len(candidates)+1)
	options := make([]string, 0, len(candidates))

	add := func(slot string) {
		if slot == "" || slot == SlotNone {
			return
		}
		if _, dup := seen[slot]; dup {
			return
		}
		seen[slot] = struct{}{}
		options = append(options, slot)
	}

	for _, slot := range candidates {
		if slot == SlotNone {
			continue
		}
		if !filteringEnabled || slot == currentSlot || IsSlotCompatibleWithKey(slot, key) {
			add(slot)
		}
	}
	add(currentSlot)

	sort.SliceStable(options, func(i, j int) bool {
		oi, oj := SlotIndex(options[i]), SlotIndex(options[j])
		switch {
		case oi >= 0 && oj >= 0:
			return oi < oj
		case oi >= 0:
			return true
		case oj >= 0:
			return false
		}
		return options[i] < options[j]
	})

	return options
}
