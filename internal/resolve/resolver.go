package resolve

// Rule is the resolution context: colors derived from the current git
// repository and branch. Either field may be empty when no VCS signal is
// available.
type Rule struct {
	PrimaryColor string `json:"primary_color,omitempty"`
	BranchColor  string `json:"branch_color,omitempty"`
}

// Color resolves a slot descriptor against a rule. The first matching step
// of the priority chain wins:
//
//  1. absent descriptors resolve to nothing
//  2. direct strings are returned verbatim (the empty string is a value,
//     not absence)
//  3. a fixed source with a value returns that value
//  4. an explicit color field outranks the symbolic sources
//  5. a repoColor source takes the rule's primary color when present
//  6. a branchColor source takes the rule's branch color when present
//  7. a bare value field is the fallback form for specs without a
//     recognized source
//
// Anything else (unrecognized source, missing referenced color, modifiers
// only) resolves to nothing. ok=false is the only failure signal; the
// resolver never panics and never errors.
func Color(d Descriptor, rule Rule) (string, bool) {
	switch d.Kind {
	case KindDirect:
		return d.Direct, true
	case KindSpec:
		spec := d.Spec
		if spec.Source == SourceFixed && spec.Value != "" {
			return spec.Value, true
		}
		if spec.Color != "" {
			return spec.Color, true
		}
		if spec.Source == SourceRepoColor && rule.PrimaryColor != "" {
			return rule.PrimaryColor, true
		}
		if spec.Source == SourceBranchColor && rule.BranchColor != "" {
			return rule.BranchColor, true
		}
		if spec.Value != "" {
			return spec.Value, true
		}
	}
	return "", false
}
