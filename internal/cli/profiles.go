package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect palette profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := loadProfiles()
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}

		names := make([]string, 0, len(profiles))
		for name := range profiles {
			names = append(names, name)
		}
		sort.Strings(names)

		if IsJSONOutput() {
			type summary struct {
				Name     string   `json:"name"`
				Elements int      `json:"elements"`
				Slots    int      `json:"slots"`
				Problems []string `json:"problems,omitempty"`
			}
			summaries := make([]summary, 0, len(names))
			for _, name := range names {
				p := profiles[name]
				summaries = append(summaries, summary{
					Name:     p.Name,
					Elements: len(p.Elements),
					Slots:    len(p.Slots),
					Problems: p.Lint(),
				})
			}
			return WriteOutput(os.Stdout, summaries)
		}

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			p := profiles[name]
			rows = append(rows, []string{
				p.Name,
				strconv.Itoa(len(p.Elements)),
				strconv.Itoa(len(p.Slots)),
				strconv.Itoa(len(p.Lint())),
			})
		}
		return writeTable(os.Stdout, []string{"NAME", "ELEMENTS", "SLOTS", "PROBLEMS"}, rows)
	},
}
