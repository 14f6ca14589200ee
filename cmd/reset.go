package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress for the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer deps.Close()

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Esto borra todo el progreso del perfil %q. ¿Continuar? (s/N): ", deps.userID)
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return err
			}
			if strings.TrimSpace(strings.ToLower(line)) != "s" {
				fmt.Println("Cancelado.")
				return nil
			}
		}

		if err := deps.store.ResetUser(cmd.Context(), deps.userID); err != nil {
			return fmt.Errorf("reset user: %w", err)
		}
		fmt.Println("Progreso eliminado.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
