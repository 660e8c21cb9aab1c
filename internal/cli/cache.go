package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/repohue/repohue/internal/db"
)

var cacheListLimit int

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	cacheListCmd.Flags().IntVar(&cacheListLimit, "limit", 0, "maximum entries to list")
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the derived-color cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached color derivations",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(appConfig.CachePath, logger)
		if err != nil {
			return fmt.Errorf("opening color cache: %w", err)
		}
		defer database.Close()

		entries, err := db.NewColorCacheRepository(database).List(cmd.Context(), cacheListLimit)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, entries)
		}

		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, []string{
				entry.RemoteURL,
				entry.Branch,
				entry.PrimaryColor,
				entry.BranchColor,
				entry.CreatedAt.Local().Format(time.RFC3339),
			})
		}
		return writeTable(os.Stdout, []string{"REMOTE", "BRANCH", "REPO COLOR", "BRANCH COLOR", "CREATED"}, rows)
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every cached derivation",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(appConfig.CachePath, logger)
		if err != nil {
			return fmt.Errorf("opening color cache: %w", err)
		}
		defer database.Close()

		count, err := db.NewColorCacheRepository(database).Purge(cmd.Context())
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{"purged": count})
		}
		fmt.Printf("Purged %d cache entries\n", count)
		return nil
	},
}
