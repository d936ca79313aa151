package obras

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrascdmx/obras_tracker/internal/store"
)

type captureReplacer struct {
	records []store.Obra
	err     error
}

func (c *captureReplacer) ReplaceAll(ctx context.Context, obras []store.Obra) error {
	c.records = obras
	return c.err
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	content := strings.Join([]string{
		"ID,Programa,Area",
		"1,parque central,obras publicas",
		",,",
		"2,mercado norte,obras publicas",
	}, "\n")
	path := writeFile(t, dir, "datos.csv", content)

	dest := &captureReplacer{}
	result, err := RunImport(context.Background(), path, false, dest)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, dest.records, 2)
	assert.Equal(t, "Parque Central", dest.records[0].Programa)
	assert.Equal(t, "OBRAS PUBLICAS", dest.records[0].AreaResponsable)
	assert.Equal(t, 1.0, dest.records[0].PuntuacionPonderada)
}

func TestRunImportPropagatesStoreError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "datos.csv", "a,b\n1,2\n3,4\n")

	dest := &captureReplacer{err: errors.New("db down")}
	_, err := RunImport(context.Background(), path, false, dest)
	assert.Error(t, err)
}

func TestRunImportMissingFile(t *testing.T) {
	_, err := RunImport(context.Background(), "/nonexistent/datos.csv", false, &captureReplacer{})
	assert.Error(t, err)
}
