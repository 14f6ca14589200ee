package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate <course.json>...",
	Short: "Validate authored course files against the content schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			course, err := content.ParseCourse(raw)
			if err != nil {
				failed = true
				fmt.Printf("✗ %s: %v\n", path, err)
				continue
			}
			fmt.Printf("✓ %s: %q, %d escenario(s)\n", path, course.Title, len(course.Scenarios))
		}
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
