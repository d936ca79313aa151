package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Obras interface {
		ReplaceAll(ctx context.Context, obras []Obra) error
		List(ctx context.Context) ([]Obra, error)
		GetByID(ctx context.Context, id int64) (*Obra, error)
		Create(ctx context.Context, obra *Obra) error
		Update(ctx context.Context, obra *Obra) error
		Delete(ctx context.Context, id int64) error
	}

	ImportHistory interface {
		Insert(ctx context.Context, history *ImportHistory) error
		GetLatest(ctx context.Context, limit int) ([]ImportHistory, error)
		UpdateStatus(ctx context.Context, id int64, status string, rowsImported, rowsSkipped int) error
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Obras:         &ObraStore{db: db},
		ImportHistory: &ImportHistoryStore{db: db},
	}
}
