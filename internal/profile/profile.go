// Package profile models palette profiles: the slot descriptor table, the
// element-to-slot mapping, and the per-profile resolution pass.
package profile

import (
	"fmt"
	"sort"

	"github.com/repohue/repohue/internal/palette"
	"github.com/repohue/repohue/internal/resolve"
)

// Profile pairs the canonical palette slots with slot descriptors and maps
// element keys to chosen slots. An element mapped to palette.SlotFixed
// resolves through its entry in Overrides instead of the slot table.
//
// A profile is treated as an immutable snapshot per resolution pass; the
// engine never mutates one.
type Profile struct {
	Name      string
	Slots     map[string]resolve.Descriptor
	Elements  map[string]string
	Overrides map[string]resolve.Descriptor
}

// New returns an empty profile with all tables allocated.
func New(name string) *Profile {
	return &Profile{
		Name:      name,
		Slots:     make(map[string]resolve.Descriptor),
		Elements:  make(map[string]string),
		Overrides: make(map[string]resolve.Descriptor),
	}
}

// SlotFor returns the palette slot assigned to an element key, or
// palette.SlotNone when the key is unmapped.
func (p *Profile) SlotFor(key string) string {
	if p == nil || p.Elements == nil {
		return palette.SlotNone
	}
	slot, ok := p.Elements[key]
	if !ok || slot == "" {
		return palette.SlotNone
	}
	return slot
}

// DescriptorFor returns the descriptor an element key resolves through.
func (p *Profile) DescriptorFor(key string) (resolve.Descriptor, bool) {
	switch slot := p.SlotFor(key); slot {
	case palette.SlotNone:
		return resolve.Descriptor{}, false
	case palette.SlotFixed:
		d, ok := p.Overrides[key]
		return d, ok
	default:
		d, ok := p.Slots[slot]
		return d, ok
	}
}

// Resolve runs one resolution pass: every mapped element key is taken
// through its slot's descriptor to a concrete color. Elements mapped to
// palette.SlotNone and descriptors that cannot produce a color are
// omitted.
func (p *Profile) Resolve(rule resolve.Rule) map[string]string {
	colors := make(map[string]string)
	if p == nil {
		return colors
	}
	for key := range p.Elements {
		d, ok := p.DescriptorFor(key)
		if !ok {
			continue
		}
		if color, ok := resolve.Color(d, rule); ok {
			colors[key] = color
		}
	}
	return colors
}

// Lint reports element assignments whose slot disagrees with the key's
// lexical classification, and assignments to unknown slots. Sentinel
// assignments are exempt by definition.
func (p *Profile) Lint() []string {
	if p == nil {
		return nil
	}
	var problems []string
	for key, slot := range p.Elements {
		if slot != palette.SlotNone && slot != palette.SlotFixed && !palette.IsCanonicalSlot(slot) {
			problems = append(problems, fmt.Sprintf("%s: unknown palette slot %q", key, slot))
			continue
		}
		if !palette.IsSlotCongruousFgBg(key, slot) {
			problems = append(problems, fmt.Sprintf("%s: slot %q crosses the fg/bg axis", key, slot))
		}
		if !palette.IsSlotCongruousActiveInactive(key, slot) {
			problems = append(problems, fmt.Sprintf("%s: slot %q crosses the active/inactive axis", key, slot))
		}
	}
	sort.Strings(problems)
	return problems
}
