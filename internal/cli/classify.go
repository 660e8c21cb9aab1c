package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repohue/repohue/internal/palette"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <element-key>",
	Short: "Classify a themeable element key",
	Long: `Show the lexical classification of an element key and its
corresponding keys across the fg/bg and active/inactive axes.`,
	Example: `  repohue classify titleBar.activeBackground
  repohue classify activityBar.foreground --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		fgBg, hasFgBg := palette.CorrespondingFgBg(key)
		actInact, hasActInact := palette.CorrespondingActiveInactive(key)

		if IsJSONOutput() {
			report := map[string]any{
				"key":        key,
				"background": palette.IsBackgroundElement(key),
				"foreground": palette.IsForegroundElement(key),
				"active":     palette.IsActiveElement(key),
				"inactive":   palette.IsInactiveElement(key),
				"neutral":    palette.IsNeutralElement(key),
			}
			if hasFgBg {
				report["fg_bg_pair"] = fgBg
			}
			if hasActInact {
				report["active_inactive_pair"] = actInact
			}
			return WriteOutput(os.Stdout, report)
		}

		rows := [][]string{
			{"background", yesNo(palette.IsBackgroundElement(key))},
			{"foreground", yesNo(palette.IsForegroundElement(key))},
			{"active", yesNo(palette.IsActiveElement(key))},
			{"inactive", yesNo(palette.IsInactiveElement(key))},
			{"neutral", yesNo(palette.IsNeutralElement(key))},
		}
		if hasFgBg {
			rows = append(rows, []string{"fg/bg pair", fgBg})
		}
		if hasActInact {
			rows = append(rows, []string{"active/inactive pair", actInact})
		}
		return writeTable(os.Stdout, []string{"AXIS", "VALUE"}, rows)
	},
}
