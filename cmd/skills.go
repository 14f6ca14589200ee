package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Riverstargroup/cultiva-finanzas/internal/skills"
	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show skill mastery across the skill tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer deps.Close()

		rows, err := deps.store.Skills().List(cmd.Context(), deps.userID)
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		byID := make(map[string]store.SkillRecord, len(rows))
		for _, r := range rows {
			byID[r.SkillID] = r
		}

		var lastDomain skills.Domain
		for _, sk := range skills.AllSkills() {
			if sk.Domain != lastDomain {
				fmt.Printf("\n[%s]\n", sk.Domain)
				lastDomain = sk.Domain
			}
			rec, ok := byID[sk.ID]
			switch {
			case !ok:
				fmt.Printf("  ·  %-26s --\n", sk.Title)
			case rec.Status == skills.StatusMastered:
				fmt.Printf("  ★  %-26s %3.0f%%\n", sk.Title, rec.Mastery*100)
			default:
				fmt.Printf("  ○  %-26s %3.0f%%\n", sk.Title, rec.Mastery*100)
			}
		}
		return nil
	},
}
