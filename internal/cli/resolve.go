package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var resolveProfile string

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveProfile, "profile", "", "profile name or raw color")
	addRuleFlags(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [element-key...]",
	Short: "Resolve element keys to concrete colors",
	Long: `Run a resolution pass over the active profile and print the concrete
color for each mapped element. With element keys as arguments only those
keys are printed; keys that resolve to nothing are skipped.`,
	Example: `  repohue resolve --branch main --remote-url git@example.com:acme/api.git
  repohue resolve titleBar.activeBackground --repo-color "#336699"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := loadProfiles()
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
		active, err := pickProfile(profiles, resolveProfile, appConfig.Profile)
		if err != nil {
			return err
		}

		rule := buildRule(cmd.Context())
		colors := active.Resolve(rule)

		if len(args) > 0 {
			requested := make(map[string]string, len(args))
			for _, key := range args {
				if color, ok := colors[key]; ok {
					requested[key] = color
				}
			}
			colors = requested
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{
				"profile": active.Name,
				"colors":  colors,
			})
		}

		keys := make([]string, 0, len(colors))
		for key := range colors {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, []string{key, colors[key]})
		}
		return writeTable(os.Stdout, []string{"ELEMENT", "COLOR"}, rows)
	},
}
