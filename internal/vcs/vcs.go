// Package vcs defines the contract with the version control collaborator.
// The engine consumes already-resolved strings; acquiring them is the
// caller's concern, and failing to acquire them is never fatal.
package vcs

import "github.com/rs/zerolog"

// Lookup is the structured result of one VCS query. A failed lookup
// carries a diagnostic in Error and an empty Value.
type Lookup struct {
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

// OK reports whether the lookup produced a usable value.
func (l Lookup) OK() bool {
	return l.Error == "" && l.Value != ""
}

// Provider supplies the per-workspace VCS signals: the current branch name
// (absent on detached HEAD or outside a repository) and the remote fetch
// URL (empty when none is configured).
type Provider interface {
	Branch() Lookup
	RemoteURL() Lookup
}

// Static is a Provider over pre-resolved values, the form the engine is
// normally fed from flags or configuration.
type Static struct {
	BranchName string
	Remote     string
}

func (s Static) Branch() Lookup    { return Lookup{Value: s.BranchName} }
func (s Static) RemoteURL() Lookup { return Lookup{Value: s.Remote} }

// Unavailable is a Provider standing in for a collaborator that could not
// be reached. Every lookup fails with the given reason.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Branch() Lookup    { return Lookup{Error: u.Reason} }
func (u Unavailable) RemoteURL() Lookup { return Lookup{Error: u.Reason} }

// Signals drains a provider into plain strings, reporting failed lookups
// through the logger as warnings. Callers proceed with neutral defaults;
// absence of a signal is not an error.
func Signals(p Provider, logger zerolog.Logger) (branch, remoteURL string) {
	b := p.Branch()
	if b.Error != "" {
		logger.Warn().Str("lookup", "branch").Str("reason", b.Error).Msg("vcs signal unavailable")
	}
	r := p.RemoteURL()
	if r.Error != "" {
		logger.Warn().Str("lookup", "remote_url").Str("reason", r.Error).Msg("vcs signal unavailable")
	}
	return b.Value, r.Value
}
