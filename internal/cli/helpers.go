package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repohue/repohue/internal/db"
	"github.com/repohue/repohue/internal/gitcolor"
	"github.com/repohue/repohue/internal/profile"
	"github.com/repohue/repohue/internal/resolve"
	"github.com/repohue/repohue/internal/vcs"
)

// Rule flags shared by the commands that resolve colors.
var (
	ruleBranch      string
	ruleRemoteURL   string
	ruleRepoColor   string
	ruleBranchColor string
	ruleNoCache     bool
)

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ruleBranch, "branch", "", "current branch name")
	cmd.Flags().StringVar(&ruleRemoteURL, "remote-url", "", "remote fetch URL")
	cmd.Flags().StringVar(&ruleRepoColor, "repo-color", "", "explicit repository color, skips derivation")
	cmd.Flags().StringVar(&ruleBranchColor, "branch-color", "", "explicit branch color, skips derivation")
	cmd.Flags().BoolVar(&ruleNoCache, "no-cache", false, "bypass the derived-color cache")
}

func loadProfiles() (map[string]*profile.Profile, error) {
	return profile.Load(appConfig.ProfilesPath)
}

// pickProfile selects the profile a resolution pass runs against. The
// selector may be a profile name or a raw color string; with no selector
// and no loaded profiles the built-in default applies.
func pickProfile(profiles map[string]*profile.Profile, requested, configured string) (*profile.Profile, error) {
	raw := strings.TrimSpace(requested)
	if raw == "" {
		raw = strings.TrimSpace(configured)
	}
	if raw == "" {
		if len(profiles) == 1 {
			for _, p := range profiles {
				return p, nil
			}
		}
		return profile.Default(), nil
	}
	if name := profile.ExtractProfileName(raw, profiles); name != "" {
		return profiles[name], nil
	}
	if profile.IsStandardColor(raw) {
		return profile.FromColor(raw), nil
	}
	return nil, fmt.Errorf("unknown profile %q", raw)
}

// buildRule assembles the resolution context from explicit color flags,
// VCS signals, and the derived-color cache, in that order of preference.
func buildRule(ctx context.Context) resolve.Rule {
	rule := resolve.Rule{PrimaryColor: ruleRepoColor, BranchColor: ruleBranchColor}
	if rule.PrimaryColor != "" && rule.BranchColor != "" {
		return rule
	}

	branch, remoteURL := vcs.Signals(vcs.Static{BranchName: ruleBranch, Remote: ruleRemoteURL}, logger)
	if branch == "" && remoteURL == "" {
		return rule
	}

	derived := cachedRule(ctx, remoteURL, branch)
	if rule.PrimaryColor == "" {
		rule.PrimaryColor = derived.PrimaryColor
	}
	if rule.BranchColor == "" {
		rule.BranchColor = derived.BranchColor
	}
	return rule
}

// cachedRule looks the derivation up in the cache before computing it.
// Cache trouble is never fatal: the derivation is pure and cheap.
func cachedRule(ctx context.Context, remoteURL, branch string) resolve.Rule {
	if ruleNoCache || remoteURL == "" {
		return gitcolor.DeriveRule(remoteURL, branch)
	}

	database, err := db.Open(appConfig.CachePath, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("color cache unavailable, deriving directly")
		return gitcolor.DeriveRule(remoteURL, branch)
	}
	defer database.Close()

	repo := db.NewColorCacheRepository(database)
	if entry, err := repo.Get(ctx, remoteURL, branch); err == nil {
		return resolve.Rule{PrimaryColor: entry.PrimaryColor, BranchColor: entry.BranchColor}
	} else if !errors.Is(err, db.ErrCacheEntryNotFound) {
		logger.Warn().Err(err).Msg("color cache read failed")
	}

	rule := gitcolor.DeriveRule(remoteURL, branch)
	entry := &db.ColorCacheEntry{
		RemoteURL:    remoteURL,
		Branch:       branch,
		PrimaryColor: rule.PrimaryColor,
		BranchColor:  rule.BranchColor,
	}
	if err := repo.Put(ctx, entry); err != nil {
		logger.Warn().Err(err).Msg("color cache write failed")
	}
	return rule
}
