package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/repohue/repohue/internal/palette"
	"github.com/repohue/repohue/internal/resolve"
)

type fileModel struct {
	Profiles map[string]profileModel `yaml:"profiles"`
}

type profileModel struct {
	Slots     map[string]resolve.Descriptor `yaml:"slots"`
	Elements  map[string]elementRef         `yaml:"elements"`
	Overrides map[string]resolve.Descriptor `yaml:"overrides"`
}

// elementRef accepts both the plain string form and the {slot: name}
// object form for element-to-slot assignments.
type elementRef struct {
	Slot string
}

func (e *elementRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Slot)
	case yaml.MappingNode:
		var obj struct {
			Slot string `yaml:"slot"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		e.Slot = obj.Slot
		return nil
	}
	return fmt.Errorf("unsupported element assignment node (kind %d)", node.Kind)
}

// Load reads a profiles file. A missing file is not an error: the tool
// degrades to the built-in default profile.
func Load(path string) (map[string]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Profile{}, nil
		}
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}
	profiles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}
	return profiles, nil
}

// Parse decodes a profiles document from YAML.
func Parse(data []byte) (map[string]*Profile, error) {
	var model fileModel
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	profiles := make(map[string]*Profile, len(model.Profiles))
	for name, pm := range model.Profiles {
		p := New(name)
		for slot, d := range pm.Slots {
			p.Slots[slot] = d
		}
		for key, d := range pm.Overrides {
			p.Overrides[key] = d
		}
		for key, ref := range pm.Elements {
			if ref.Slot == "" {
				p.Elements[key] = palette.SlotNone
				continue
			}
			p.Elements[key] = ref.Slot
		}
		profiles[name] = p
	}
	return profiles, nil
}
