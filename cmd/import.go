package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Riverstargroup/cultiva-finanzas/internal/config"
	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <course.json>...",
	Short: "Validate and install authored course files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir, err := resolveContentDir(cfg)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create content dir: %w", err)
		}

		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			course, err := content.ParseCourse(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, seed := range content.SeedCourses() {
				if seed.ID == course.ID {
					return fmt.Errorf("%s: course id %q collides with a built-in course", path, course.ID)
				}
			}
			dst := filepath.Join(dir, course.ID+".json")
			if err := os.WriteFile(dst, raw, 0o644); err != nil {
				return fmt.Errorf("install %s: %w", path, err)
			}
			fmt.Printf("✓ %q instalado (%d escenarios) → %s\n", course.Title, len(course.Scenarios), dst)
		}

		// Rebuild the full catalog to catch cross-file id collisions early.
		if _, err := content.LoadCatalog(dir); err != nil {
			return fmt.Errorf("catalog check after import: %w", err)
		}
		return nil
	},
}

// resolveContentDir returns the imported-course directory: the configured
// override, or a `courses` directory next to the default database.
func resolveContentDir(cfg *config.Config) (string, error) {
	if cfg.ContentDir != "" {
		return cfg.ContentDir, nil
	}
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "courses"), nil
}
