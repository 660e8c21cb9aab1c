// Package gitcolor derives deterministic colors from repository identity.
// The hash of a remote URL or branch name picks a hue; fixed saturation
// and lightness bands keep the result readable.
package gitcolor

import (
	"hash/fnv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/repohue/repohue/internal/resolve"
)

// Repository colors sit darker so branch accents stay visible on top of
// them.
const (
	repoSaturation   = 0.45
	repoLightness    = 0.32
	branchSaturation = 0.55
	branchLightness  = 0.55
)

// DeriveRule fills a resolution rule from VCS identity strings. Empty
// inputs leave the corresponding field empty; identical inputs always
// produce identical colors.
func DeriveRule(remoteURL, branch string) resolve.Rule {
	rule := resolve.Rule{}
	if strings.TrimSpace(remoteURL) != "" {
		rule.PrimaryColor = RepoColor(remoteURL)
	}
	if strings.TrimSpace(branch) != "" {
		rule.BranchColor = BranchColor(branch)
	}
	return rule
}

// RepoColor maps a remote URL to a stable dark hex color.
func RepoColor(remoteURL string) string {
	return hexFromSeed(remoteURL, repoSaturation, repoLightness)
}

// BranchColor maps a branch name to a stable accent hex color.
func BranchColor(branch string) string {
	return hexFromSeed(branch, branchSaturation, branchLightness)
}

func hexFromSeed(seed string, saturation, lightness float64) string {
	hue := float64(hashSeed(seed) % 360)
	return colorful.Hsl(hue, saturation, lightness).Clamped().Hex()
}

func hashSeed(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.TrimSpace(seed)))
	return h.Sum64()
}
