package achievements

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

// Engine evaluates the rule catalog and persists unlocks.
type Engine struct {
	repo   store.AchievementRepo
	rules  []Rule
	logger *slog.Logger
}

// NewEngine creates an Engine over the standard rule catalog.
func NewEngine(repo store.AchievementRepo, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{repo: repo, rules: Rules(), logger: logger}
}

// Evaluate runs every rule against actx and unlocks qualifying badges. It
// returns only badges newly inserted by this call: already-unlocked badges
// are silently skipped by the idempotent upsert. A failed unlock is logged
// and does not stop the remaining rules.
func (e *Engine) Evaluate(ctx context.Context, userID string, actx Context) ([]string, error) {
	var newly []string
	var errs []error

	for _, rule := range e.rules {
		if !rule.Check(actx) {
			continue
		}
		inserted, err := e.repo.Unlock(ctx, userID, rule.Badge)
		if err != nil {
			e.logger.Warn("badge unlock failed",
				"user", userID, "badge", rule.Badge, "err", err)
			errs = append(errs, err)
			continue
		}
		if inserted {
			newly = append(newly, rule.Badge)
		}
	}

	return newly, errors.Join(errs...)
}
