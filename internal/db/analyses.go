package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/staffing-optimizer/internal/types"
)

// SaveAnalysis stores an optimization run and returns its ID.
func (db *DB) SaveAnalysis(ctx context.Context, result *types.RankedOptions, source string) (uuid.UUID, error) {
	requirementJSON, err := json.Marshal(result.Requirement)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal requirement: %w", err)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	recommended := ""
	if option := result.RecommendedOption(); option != nil {
		recommended = string(option.Type)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (skill_name, level, requirement, result, recommended, source)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		result.Requirement.SkillName, string(result.Requirement.Level),
		requirementJSON, resultJSON, recommended, source,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil if not found.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, skill_name, level, requirement, result, recommended, source, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.SkillName, &a.Level, &a.Requirement, &a.Result, &a.Recommended, &a.Source, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// ListAnalyses returns summaries of recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, skill_name, level, recommended, source, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.SkillName, &s.Level, &s.Recommended, &s.Source, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis rows: %w", err)
	}

	return summaries, nil
}

// DeleteAnalysis removes a stored analysis. Returns true if a row was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountAnalyses returns the number of stored analyses.
func (db *DB) CountAnalyses(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}
