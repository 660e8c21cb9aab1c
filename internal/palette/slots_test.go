package palette

import "testing"

func TestCorrespondingPaletteSlotIsInvolution(t *testing.T) {
	for _, slot := range CanonicalSlots {
		swapped, ok := CorrespondingPaletteSlot(slot)
		if !ok {
			t.Fatalf("expected a fg/bg counterpart for %q", slot)
		}
		back, ok := CorrespondingPaletteSlot(swapped)
		if !ok {
			t.Fatalf("expected a fg/bg counterpart for %q", swapped)
		}
		if back != slot {
			t.Fatalf("fg/bg swap of %q round-tripped to %q", slot, back)
		}
	}
}

func TestCorrespondingPaletteSlotSentinels(t *testing.T) {
	if _, ok := CorrespondingPaletteSlot(SlotNone); ok {
		t.Fatal("none must have no fg/bg counterpart")
	}
	if _, ok := CorrespondingPaletteSlot(SlotFixed); ok {
		t.Fatal("__fixed__ must have no fg/bg counterpart")
	}
	if _, ok := CorrespondingPaletteSlot("primaryActive"); ok {
		t.Fatal("slots without a Fg/Bg suffix must have no counterpart")
	}
}

func TestCorrespondingActiveInactiveSlot(t *testing.T) {
	for _, slot := range CanonicalSlots {
		swapped, ok := CorrespondingActiveInactiveSlot(slot)
		if IsSlotNeutral(slot) {
			if ok {
				t.Fatalf("neutral slot %q must have no active/inactive counterpart, got %q", slot, swapped)
			}
			continue
		}
		if !ok {
			t.Fatalf("expected an active/inactive counterpart for %q", slot)
		}
		back, ok := CorrespondingActiveInactiveSlot(swapped)
		if !ok || back != slot {
			t.Fatalf("active/inactive swap of %q round-tripped to %q (ok=%v)", slot, back, ok)
		}
	}

	if _, ok := CorrespondingActiveInactiveSlot(SlotNone); ok {
		t.Fatal("none must have no active/inactive counterpart")
	}
}

func TestSlotClassification(t *testing.T) {
	cases := []struct {
		slot                           string
		fg, bg, active, inactive, neut bool
	}{
		{"primaryActiveFg", true, false, true, false, false},
		{"primaryInactiveBg", false, true, false, true, false},
		{"secondaryActiveBg", false, true, true, false, false},
		{"tertiaryFg", true, false, false, false, true},
		{"quaternaryBg", false, true, false, false, true},
	}
	for _, tc := range cases {
		if got := IsSlotForeground(tc.slot); got != tc.fg {
			t.Errorf("IsSlotForeground(%q) = %v, want %v", tc.slot, got, tc.fg)
		}
		if got := IsSlotBackground(tc.slot); got != tc.bg {
			t.Errorf("IsSlotBackground(%q) = %v, want %v", tc.slot, got, tc.bg)
		}
		if got := IsSlotActive(tc.slot); got != tc.active {
			t.Errorf("IsSlotActive(%q) = %v, want %v", tc.slot, got, tc.active)
		}
		if got := IsSlotInactive(tc.slot); got != tc.inactive {
			t.Errorf("IsSlotInactive(%q) = %v, want %v", tc.slot, got, tc.inactive)
		}
		if got := IsSlotNeutral(tc.slot); got != tc.neut {
			t.Errorf("IsSlotNeutral(%q) = %v, want %v", tc.slot, got, tc.neut)
		}
	}
}

func TestSlotIndexCoversCanonicalOrder(t *testing.T) {
	for i, slot := range CanonicalSlots {
		if got := SlotIndex(slot); got != i {
			t.Fatalf("SlotIndex(%q) = %d, want %d", slot, got, i)
		}
	}
	if SlotIndex(SlotNone) != -1 || SlotIndex(SlotFixed) != -1 || SlotIndex("customAccent") != -1 {
		t.Fatal("non-canonical slots must index to -1")
	}
}
