// Package cmd wires the cultiva CLI.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Riverstargroup/cultiva-finanzas/internal/achievements"
	"github.com/Riverstargroup/cultiva-finanzas/internal/config"
	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
	"github.com/Riverstargroup/cultiva-finanzas/internal/progress"
	"github.com/Riverstargroup/cultiva-finanzas/internal/skills"
	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cultiva",
	Short: "Simulador de finanzas personales",
	Long:  "Cultiva — terminal course player that teaches personal finance through decision scenarios with spaced review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CULTIVA_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile to act on (overrides CULTIVA_USER env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// appDeps bundles everything a subcommand needs. Built per invocation and
// closed by the caller.
type appDeps struct {
	cfg     *config.Config
	store   *store.Store
	catalog *content.Catalog
	orch    *progress.Orchestrator
	stats   *progress.Stats
	userID  string
	logger  *slog.Logger
}

func (d *appDeps) Close() error {
	return d.store.Close()
}

// openDeps loads config, opens the store and assembles the engine.
func openDeps(cmd *cobra.Command) (*appDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.UserID = u
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	contentDir, err := resolveContentDir(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}
	catalog, err := content.LoadCatalog(contentDir)
	if err != nil {
		logger.Warn("imported content unavailable, using built-in catalog", "err", err)
		catalog = content.DefaultCatalog()
	}
	deps := progress.Deps{
		Cache:                &progress.ViewCache{},
		Reviews:              st.Reviews(),
		Progress:             st.Progress(),
		Activity:             st.Activity(),
		Completions:          st.Completions(),
		Badges:               achievements.NewEngine(st.Achievements(), logger),
		Skills:               skills.NewUpdater(st.Skills(), logger),
		Catalog:              catalog,
		Achievements:         st.Achievements(),
		SkillMastery:         st.Skills(),
		Location:             cfg.Location(),
		MinutesPerCompletion: cfg.MinutesPerCompletion,
		Logger:               logger,
	}

	return &appDeps{
		cfg:     cfg,
		store:   st,
		catalog: catalog,
		orch:    progress.NewOrchestrator(deps),
		stats:   progress.NewStats(deps),
		userID:  cfg.UserID,
		logger:  logger,
	}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then config/env, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
