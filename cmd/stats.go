package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learning dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer deps.Close()

		d, err := deps.stats.Dashboard(cmd.Context(), deps.userID)
		if err != nil {
			return err
		}

		fmt.Printf("Perfil: %s\n\n", deps.userID)
		fmt.Printf("Escenarios completados: %d/%d\n", d.CompletedScenarios, d.TotalScenarios)
		fmt.Printf("Cursos completados:     %d\n", d.CoursesCompleted)
		fmt.Printf("Minutos de estudio:     %d\n", d.TotalMinutes)
		fmt.Printf("Racha actual:           %d día(s)\n", d.Streak)
		fmt.Printf("Insignias:              %d/%d\n", d.BadgesUnlocked, d.BadgesTotal)
		fmt.Printf("Habilidades dominadas:  %d\n\n", d.SkillsMastered)

		fmt.Println("Última semana:")
		for _, day := range d.Week {
			bar := strings.Repeat("█", day.Minutes/5)
			fmt.Printf("  %s %3d min %s\n", day.Label, day.Minutes, bar)
		}
		return nil
	},
}
