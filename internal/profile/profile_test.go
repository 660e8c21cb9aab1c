package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/repohue/repohue/internal/palette"
	"github.com/repohue/repohue/internal/resolve"
)

func testProfile() *Profile {
	p := New("test")
	p.Slots["primaryActiveBg"] = resolve.FromSource(resolve.SourceRepoColor)
	p.Slots["secondaryActiveBg"] = resolve.FromSource(resolve.SourceBranchColor)
	p.Slots["tertiaryFg"] = resolve.Direct("#E6EDF3")
	p.Elements["titleBar.activeBackground"] = "primaryActiveBg"
	p.Elements["tab.activeBackground"] = "secondaryActiveBg"
	p.Elements["activityBar.foreground"] = "tertiaryFg"
	p.Elements["statusBar.background"] = palette.SlotNone
	p.Elements["focusBorder"] = palette.SlotFixed
	p.Overrides["focusBorder"] = resolve.Fixed("#ff00ff")
	return p
}

func TestResolvePass(t *testing.T) {
	p := testProfile()
	rule := resolve.Rule{PrimaryColor: "#102030", BranchColor: "#405060"}

	colors := p.Resolve(rule)
	require.Equal(t, map[string]string{
		"titleBar.activeBackground": "#102030",
		"tab.activeBackground":      "#405060",
		"activityBar.foreground":    "#E6EDF3",
		"focusBorder":               "#ff00ff",
	}, colors)
}

func TestResolveSkipsUnresolvable(t *testing.T) {
	p := testProfile()

	// No branch color: the branchColor-sourced element drops out.
	colors := p.Resolve(resolve.Rule{PrimaryColor: "#102030"})
	require.NotContains(t, colors, "tab.activeBackground")
	require.Contains(t, colors, "titleBar.activeBackground")

	// An element mapped to none never resolves.
	require.NotContains(t, colors, "statusBar.background")
}

func TestDescriptorForFixedUsesOverrides(t *testing.T) {
	p := testProfile()

	d, ok := p.DescriptorFor("focusBorder")
	require.True(t, ok)
	require.Equal(t, resolve.Fixed("#ff00ff"), d)

	// A fixed mapping without an override has nothing to resolve through.
	p.Elements["panelBg"] = palette.SlotFixed
	_, ok = p.DescriptorFor("panelBg")
	require.False(t, ok)
}

func TestLint(t *testing.T) {
	p := New("lint")
	p.Elements["titleBar.activeBackground"] = "primaryActiveFg" // crosses fg/bg
	p.Elements["statusBar.background"] = "primaryActiveBg"      // crosses activity
	p.Elements["tab.activeForeground"] = "mystery"              // unknown slot
	p.Elements["focusBorder"] = palette.SlotFixed               // exempt
	p.Elements["activityBar.foreground"] = "tertiaryFg"         // fine

	problems := p.Lint()
	require.Len(t, problems, 3)
	require.Contains(t, problems[0], "primaryActiveBg")
	require.Contains(t, problems[1], "mystery")
	require.Contains(t, problems[2], "primaryActiveFg")
}

func TestDefaultProfileIsCongruous(t *testing.T) {
	require.Empty(t, Default().Lint())
}

func TestDefaultProfileResolves(t *testing.T) {
	rule := resolve.Rule{PrimaryColor: "#112233", BranchColor: "#445566"}
	colors := Default().Resolve(rule)

	require.Equal(t, "#112233", colors["titleBar.activeBackground"])
	require.Equal(t, "#445566", colors["tab.activeBackground"])
	require.Equal(t, "#E6EDF3", colors["titleBar.activeForeground"])
	require.Equal(t, "#8B9AAE", colors["titleBar.inactiveForeground"])
	require.Len(t, colors, len(DefaultElementSlots))
}

func TestFromColorPaintsBackgroundsOnly(t *testing.T) {
	p := FromColor("#abc123")
	colors := p.Resolve(resolve.Rule{})

	require.Equal(t, "#abc123", colors["titleBar.activeBackground"])
	require.Equal(t, "#abc123", colors["statusBar.background"])
	require.NotContains(t, colors, "titleBar.activeForeground")
	require.Empty(t, p.Lint())
}
