package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List scenarios due for spaced review",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer deps.Close()

		due, err := deps.store.Reviews().ListDue(cmd.Context(), deps.userID, time.Now())
		if err != nil {
			return fmt.Errorf("list due reviews: %w", err)
		}
		if len(due) == 0 {
			fmt.Println("Nada pendiente de repaso. ✓")
			return nil
		}

		fmt.Printf("%d escenario(s) pendientes de repaso:\n\n", len(due))
		for _, rec := range due {
			title := rec.ScenarioID
			if sc := deps.catalog.Scenario(rec.ScenarioID); sc != nil {
				title = sc.Title
			}
			fmt.Printf("  %-30s vencido %s  (intervalo %dd, EF %.2f)\n",
				title, rec.NextDueAt.Format("2006-01-02"), rec.IntervalDays, rec.EaseFactor)
		}
		fmt.Println("\nUsa `cultiva study <scenario-id>` para repasar.")
		return nil
	},
}
