package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/repohue/repohue/internal/palette"
)

var previewProfile string

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewProfile, "profile", "", "profile name or raw color")
	addRuleFlags(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [profile]",
	Short: "Render the resolved palette as color swatches",
	Long: `Resolve the active profile and render a swatch per element, background
elements filled and foreground elements as tinted text.`,
	Example: `  repohue preview --remote-url git@example.com:acme/api.git --branch main
  repohue preview ocean`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := loadProfiles()
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
		requested := previewProfile
		if len(args) > 0 {
			requested = args[0]
		}
		active, err := pickProfile(profiles, requested, appConfig.Profile)
		if err != nil {
			return err
		}

		rule := buildRule(cmd.Context())
		colors := active.Resolve(rule)

		keys := make([]string, 0, len(colors))
		width := 0
		for key := range colors {
			keys = append(keys, key)
			if len(key) > width {
				width = len(key)
			}
		}
		sort.Strings(keys)

		fmt.Printf("profile: %s\n\n", active.Name)
		for _, key := range keys {
			color := colors[key]
			var swatch string
			if palette.IsForegroundElement(key) {
				swatch = lipgloss.NewStyle().
					Foreground(lipgloss.Color(color)).
					Render("sample text")
			} else {
				swatch = lipgloss.NewStyle().
					Background(lipgloss.Color(color)).
					Render(strings.Repeat(" ", 12))
			}
			fmt.Fprintf(os.Stdout, "%-*s  %-9s  %s\n", width, key, color, swatch)
		}
		return nil
	},
}
