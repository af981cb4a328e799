package store

import (
	"context"
	"database/sql"
	"fmt"
)

type statsRepo struct {
	db *sql.DB
}

var _ StatsRepo = (*statsRepo)(nil)

func (r *statsRepo) Overview(ctx context.Context) (Overview, error) {
	var o Overview

	err := r.db.QueryRowContext(ctx,
		`SELECT
			COUNT(DISTINCT CASE WHEN action = 'start' THEN session_id END),
			COUNT(CASE WHEN action = 'export' THEN 1 END),
			COALESCE(MAX(CASE WHEN action = 'end' THEN score END), 0)
		 FROM session_events`,
	).Scan(&o.Sessions, &o.Exports, &o.BestScore)
	if err != nil {
		return Overview{}, fmt.Errorf("session overview: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(CASE WHEN correct THEN 1 END) FROM answer_events`,
	).Scan(&o.Answered, &o.Correct)
	if err != nil {
		return Overview{}, fmt.Errorf("answer overview: %w", err)
	}

	return o, nil
}

func (r *statsRepo) KindBreakdown(ctx context.Context) ([]KindStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*), COUNT(CASE WHEN correct THEN 1 END)
		 FROM answer_events
		 GROUP BY kind
		 ORDER BY kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("kind breakdown: %w", err)
	}
	defer rows.Close()

	var stats []KindStat
	for rows.Next() {
		var ks KindStat
		if err := rows.Scan(&ks.Kind, &ks.Answered, &ks.Correct); err != nil {
			return nil, fmt.Errorf("scan kind stat: %w", err)
		}
		stats = append(stats, ks)
	}
	return stats, rows.Err()
}

// Reset drops all drill history. Used by the reset command; irreversible.
func Reset(db *sql.DB) error {
	for _, table := range []string{"answer_events", "session_events", "llm_events"} {
		if _, err := db.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
