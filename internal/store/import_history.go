package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ImportHistoryStore struct {
	db *sqlx.DB
}

var (
	TriggerTypeManual    = "manual"
	TriggerTypeUpload    = "upload"
	TriggerTypeScheduled = "scheduled"
)

func (ih *ImportHistoryStore) Insert(ctx context.Context, history *ImportHistory) error {
	query := `INSERT INTO import_history (
		source_file,
		trigger_type,
		status,
		rows_imported,
		rows_skipped
	) VALUES (
		:source_file,
		:trigger_type,
		:status,
		:rows_imported,
		:rows_skipped
	) RETURNING id, processed_at`

	rows, err := sqlx.NamedQueryContext(ctx, ih.db, query, history)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&history.ID, &history.ProcessedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (ih *ImportHistoryStore) GetLatest(ctx context.Context, limit int) ([]ImportHistory, error) {
	history := []ImportHistory{}
	err := ih.db.SelectContext(ctx, &history,
		"SELECT * FROM import_history ORDER BY processed_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (ih *ImportHistoryStore) UpdateStatus(ctx context.Context, id int64, status string, rowsImported, rowsSkipped int) error {
	_, err := ih.db.ExecContext(ctx,
		"UPDATE import_history SET status = $1, rows_imported = $2, rows_skipped = $3 WHERE id = $4",
		status, rowsImported, rowsSkipped, id)
	return err
}
