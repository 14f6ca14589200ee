package store

import (
	"context"
	"fmt"

	"github.com/Riverstargroup/cultiva-finanzas/ent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/userskill"
)

// skillRepo implements SkillRepo on the ent client.
type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) GetMastery(ctx context.Context, userID string, skillIDs []string) (map[string]float64, error) {
	if len(skillIDs) == 0 {
		return map[string]float64{}, nil
	}
	rows, err := r.client.UserSkill.Query().
		Where(
			userskill.UserID(userID),
			userskill.SkillIDIn(skillIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill mastery: %w", err)
	}

	mastery := make(map[string]float64, len(rows))
	for _, row := range rows {
		mastery[row.SkillID] = row.Mastery
	}
	return mastery, nil
}

func (r *skillRepo) Upsert(ctx context.Context, userID, skillID string, mastery float64, status string) error {
	err := r.client.UserSkill.Create().
		SetUserID(userID).
		SetSkillID(skillID).
		SetMastery(mastery).
		SetStatus(status).
		OnConflictColumns(userskill.FieldUserID, userskill.FieldSkillID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert skill %s: %w", skillID, err)
	}
	return nil
}

func (r *skillRepo) List(ctx context.Context, userID string) ([]SkillRecord, error) {
	rows, err := r.client.UserSkill.Query().
		Where(userskill.UserID(userID)).
		Order(ent.Asc(userskill.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	records := make([]SkillRecord, len(rows))
	for i, row := range rows {
		records[i] = SkillRecord{
			SkillID: row.SkillID,
			Mastery: row.Mastery,
			Status:  row.Status,
		}
	}
	return records, nil
}
