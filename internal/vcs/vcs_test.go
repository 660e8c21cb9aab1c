package vcs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	p := Static{BranchName: "main", Remote: "git@github.com:acme/widgets.git"}

	branch := p.Branch()
	require.True(t, branch.OK())
	require.Equal(t, "main", branch.Value)

	remote := p.RemoteURL()
	require.True(t, remote.OK())
	require.Equal(t, "git@github.com:acme/widgets.git", remote.Value)
}

func TestEmptyLookupIsNotOK(t *testing.T) {
	require.False(t, Lookup{}.OK())
	require.False(t, Lookup{Error: "boom"}.OK())
	require.True(t, Lookup{Value: "main"}.OK())
}

func TestSignalsSurfacesValuesAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	branch, remote := Signals(Static{BranchName: "main"}, logger)
	require.Equal(t, "main", branch)
	require.Equal(t, "", remote)
	require.Empty(t, buf.String())

	branch, remote = Signals(Unavailable{Reason: "git extension inactive"}, logger)
	require.Equal(t, "", branch)
	require.Equal(t, "", remote)
	require.True(t, strings.Contains(buf.String(), "git extension inactive"))
	require.True(t, strings.Contains(buf.String(), "vcs signal unavailable"))
}
