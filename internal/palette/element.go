package palette

import "strings"

// Element key classification is purely lexical and case-insensitive. The
// fg/bg and active/inactive axes are independent: a key may be background
// and neutral at the same time, or match neither axis at all.

// IsBackgroundElement reports whether an element key names a background
// surface.
func IsBackgroundElement(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "background") || strings.HasSuffix(k, "bg")
}

// IsForegroundElement reports whether an element key names a foreground
// surface.
func IsForegroundElement(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "foreground") || strings.HasSuffix(k, "fg")
}

// IsActiveElement reports whether an element key names the active state of
// a surface. "inactive" contains "active", hence the guard.
func IsActiveElement(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "active") && !strings.Contains(k, "inactive")
}

// IsInactiveElement reports whether an element key names the inactive
// state of a surface.
func IsInactiveElement(key string) bool {
	return strings.Contains(strings.ToLower(key), "inactive")
}

// IsNeutralElement reports whether an element key carries no activity
// qualifier.
func IsNeutralElement(key string) bool {
	return !IsActiveElement(key) && !IsInactiveElement(key)
}

// fgBgPairs lists the background/foreground element pairs. The lookup
// table is built symmetric from these.
var fgBgPairs = [][2]string{
	{"titleBar.activeBackground", "titleBar.activeForeground"},
	{"titleBar.inactiveBackground", "titleBar.inactiveForeground"},
	{"activityBar.background", "activityBar.foreground"},
	{"statusBar.background", "statusBar.foreground"},
	{"statusBarItem.remoteBackground", "statusBarItem.remoteForeground"},
	{"tab.activeBackground", "tab.activeForeground"},
	{"tab.inactiveBackground", "tab.inactiveForeground"},
}

// activeInactivePairs lists the active/inactive element pairs. The
// activity bar names its active foreground without an "active" qualifier,
// so that pair is asymmetric by name and must stay table-driven rather
// than derived from the key strings.
var activeInactivePairs = [][2]string{
	{"titleBar.activeBackground", "titleBar.inactiveBackground"},
	{"titleBar.activeForeground", "titleBar.inactiveForeground"},
	{"activityBar.foreground", "activityBar.inactiveForeground"},
	{"tab.activeBackground", "tab.inactiveBackground"},
	{"tab.activeForeground", "tab.inactiveForeground"},
}

var (
	fgBgTable           = buildSymmetric(fgBgPairs)
	activeInactiveTable = buildSymmetric(activeInactivePairs)
)

func buildSymmetric(pairs [][2]string) map[string]string {
	table := make(map[string]string, len(pairs)*2)
	for _, pair := range pairs {
		table[pair[0]] = pair[1]
		table[pair[1]] = pair[0]
	}
	return table
}

// CorrespondingFgBg looks up the paired element key across the fg/bg axis.
// Absence means the key has no defined pair, even when it lexically
// classifies as a background or foreground element.
func CorrespondingFgBg(key string) (string, bool) {
	paired, ok := fgBgTable[key]
	return paired, ok
}

// CorrespondingActiveInactive looks up the paired element key across the
// active/inactive axis.
func CorrespondingActiveInactive(key string) (string, bool) {
	paired, ok := activeInactiveTable[key]
	return paired, ok
}
