// Package resolve turns palette slot descriptors into concrete colors.
package resolve

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Descriptor sources understood by the resolver. Unrecognized sources are
// carried as-is and simply never match a resolution step.
const (
	SourceFixed       = "fixed"
	SourceRepoColor   = "repoColor"
	SourceBranchColor = "branchColor"
)

// Kind discriminates the descriptor variants.
type Kind int

const (
	// KindAbsent is a missing descriptor; it resolves to nothing.
	KindAbsent Kind = iota

	// KindDirect is a plain color string, returned verbatim.
	KindDirect

	// KindSpec is a structured descriptor carrying a source and optional
	// override fields.
	KindSpec
)

// Descriptor is the value a mapping assigns to an element key: absent, a
// plain color string, or a structured spec. The presentation modifiers on
// the spec form are carried but inert at this resolution layer.
type Descriptor struct {
	Kind   Kind
	Direct string
	Spec   Spec
}

// Spec is the structured descriptor form.
type Spec struct {
	Source  string  `yaml:"source" json:"source,omitempty"`
	Value   string  `yaml:"value" json:"value,omitempty"`
	Color   string  `yaml:"color" json:"color,omitempty"`
	Lighten float64 `yaml:"lighten" json:"lighten,omitempty"`
	Opacity float64 `yaml:"opacity" json:"opacity,omitempty"`
}

// Direct wraps a plain color string.
func Direct(color string) Descriptor {
	return Descriptor{Kind: KindDirect, Direct: color}
}

// Fixed builds a fixed-value descriptor.
func Fixed(value string) Descriptor {
	return Descriptor{Kind: KindSpec, Spec: Spec{Source: SourceFixed, Value: value}}
}

// FromSource builds a symbolic-source descriptor.
func FromSource(source string) Descriptor {
	return Descriptor{Kind: KindSpec, Spec: Spec{Source: source}}
}

// FromValue converts an untyped configuration value into a Descriptor.
// Strings become direct colors, mappings become specs with whatever fields
// matched, and anything else is absent. Resolution stays total regardless
// of shape.
func FromValue(v any) Descriptor {
	switch value := v.(type) {
	case nil:
		return Descriptor{}
	case string:
		return Direct(value)
	case map[string]any:
		spec := Spec{}
		if s, ok := value["source"].(string); ok {
			spec.Source = s
		}
		if s, ok := value["value"].(string); ok {
			spec.Value = s
		}
		if s, ok := value["color"].(string); ok {
			spec.Color = s
		}
		if f, ok := toFloat(value["lighten"]); ok {
			spec.Lighten = f
		}
		if f, ok := toFloat(value["opacity"]); ok {
			spec.Opacity = f
		}
		return Descriptor{Kind: KindSpec, Spec: spec}
	}
	return Descriptor{}
}

func toFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	}
	return 0, false
}

// UnmarshalYAML accepts either a scalar color string or a mapping spec.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*d = Direct(s)
		return nil
	case yaml.MappingNode:
		var spec Spec
		if err := node.Decode(&spec); err != nil {
			return err
		}
		*d = Descriptor{Kind: KindSpec, Spec: spec}
		return nil
	}
	return fmt.Errorf("unsupported slot descriptor node (kind %d)", node.Kind)
}

// MarshalYAML emits the compact form a user would write.
func (d Descriptor) MarshalYAML() (any, error) {
	switch d.Kind {
	case KindDirect:
		return d.Direct, nil
	case KindSpec:
		return d.Spec, nil
	}
	return nil, nil
}
