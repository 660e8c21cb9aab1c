package gitcolor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestDerivationIsDeterministic(t *testing.T) {
	url := "git@github.com:acme/widgets.git"
	require.Equal(t, RepoColor(url), RepoColor(url))
	require.Equal(t, BranchColor("main"), BranchColor("main"))

	// Surrounding whitespace does not change the seed.
	require.Equal(t, RepoColor(url), RepoColor("  "+url+"  "))
}

func TestDerivedColorsAreValidHex(t *testing.T) {
	for _, seed := range []string{"main", "feature/resolver", "git@github.com:acme/widgets.git", "x"} {
		require.Regexp(t, hexPattern, RepoColor(seed))
		require.Regexp(t, hexPattern, BranchColor(seed))
	}
}

func TestDistinctSeedsDiverge(t *testing.T) {
	require.NotEqual(t, RepoColor("git@github.com:acme/widgets.git"), RepoColor("git@github.com:acme/gadgets.git"))
	require.NotEqual(t, BranchColor("main"), BranchColor("develop"))
}

func TestRepoAndBranchBandsDiffer(t *testing.T) {
	// Same seed, different lightness bands.
	require.NotEqual(t, RepoColor("main"), BranchColor("main"))
}

func TestDeriveRuleLeavesEmptyInputsEmpty(t *testing.T) {
	rule := DeriveRule("", "main")
	require.Empty(t, rule.PrimaryColor)
	require.NotEmpty(t, rule.BranchColor)

	rule = DeriveRule("git@github.com:acme/widgets.git", "")
	require.NotEmpty(t, rule.PrimaryColor)
	require.Empty(t, rule.BranchColor)

	require.Equal(t, DeriveRule("", ""), DeriveRule("   ", "\t"))
}
