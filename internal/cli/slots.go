package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repohue/repohue/internal/palette"
)

var (
	slotsCurrent  string
	slotsNoFilter bool
)

func init() {
	rootCmd.AddCommand(slotsCmd)
	slotsCmd.Flags().StringVar(&slotsCurrent, "current", "", "currently assigned slot, always kept in the result")
	slotsCmd.Flags().BoolVar(&slotsNoFilter, "no-filter", false, "disable compatibility filtering")
}

var slotsCmd = &cobra.Command{
	Use:   "slots <element-key>",
	Short: "List palette slots valid for an element",
	Long: `List the palette slots that may be assigned to a themeable element,
filtered by fg/bg and active/inactive compatibility unless filtering is
disabled here or in the configuration.`,
	Example: `  repohue slots titleBar.activeBackground
  repohue slots focusBorder --current customAccent`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		filtering := appConfig.Filtering && !slotsNoFilter

		options := palette.FilteredOptions(key, palette.CanonicalSlots, slotsCurrent, filtering)

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{
				"key":       key,
				"filtering": filtering,
				"slots":     options,
			})
		}

		for _, slot := range options {
			fmt.Println(slot)
		}
		return nil
	},
}
