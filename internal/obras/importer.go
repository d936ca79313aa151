package obras

import (
	"context"
	"time"

	"github.com/obrascdmx/obras_tracker/internal/store"
)

type ImportResult struct {
	Imported int
	Skipped  int
}

// ObraReplacer is the slice of the storage layer the import pipeline needs.
type ObraReplacer interface {
	ReplaceAll(ctx context.Context, obras []store.Obra) error
}

// RunImport reads a capture file, normalizes every row and swaps the stored
// dataset for the result. Fully empty rows are skipped and counted, every
// other row always produces a record.
func RunImport(ctx context.Context, path string, latin1 bool, dest ObraReplacer) (ImportResult, error) {
	rows, err := ReadRows(path, latin1)
	if err != nil {
		return ImportResult{}, err
	}

	now := time.Now().UTC()
	records := make([]store.Obra, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if row.IsEmpty() {
			skipped++
			continue
		}
		records = append(records, AssembleObra(row, now))
	}

	if err := dest.ReplaceAll(ctx, records); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Imported: len(records), Skipped: skipped}, nil
}
