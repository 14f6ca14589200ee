package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Riverstargroup/cultiva-finanzas/internal/achievements"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show unlocked and pending badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer deps.Close()

		unlocked, err := deps.store.Achievements().List(cmd.Context(), deps.userID)
		if err != nil {
			return fmt.Errorf("list badges: %w", err)
		}
		byID := make(map[string]string, len(unlocked))
		for _, rec := range unlocked {
			byID[rec.BadgeID] = rec.UnlockedAt.Format("2006-01-02")
		}

		for _, b := range achievements.Catalog() {
			if when, ok := byID[b.ID]; ok {
				fmt.Printf("  🏅 %-22s %s  (desbloqueada %s)\n", b.Name, b.Description, when)
			} else {
				fmt.Printf("  🔒 %-22s %s\n", b.Name, b.Description)
			}
		}
		return nil
	},
}
