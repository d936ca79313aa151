package obras

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleObraEmptyRow(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	obra := AssembleObra(RowFromCells(nil), now)

	assert.Equal(t, "Sin nombre", obra.Programa)
	assert.Equal(t, "DIRECCIÓN GENERAL", obra.AreaResponsable)
	assert.Equal(t, "No asignado", obra.Contratista)
	assert.Equal(t, "No especificado", obra.TipoObra)
	assert.Equal(t, "No especificado", obra.AlcanceTerritorial)
	assert.Equal(t, "No especificado", obra.EstatusGeneral)
	assert.Equal(t, "No especificado", obra.Multianual)

	assert.Equal(t, 1, obra.Urgencia)
	assert.Equal(t, 1, obra.NivelRiesgo)
	assert.Equal(t, 1.0, obra.PuntuacionPonderada)

	assert.Equal(t, SemaphoreGreen, obra.SemaforoTecnico)
	assert.Equal(t, SemaphoreGreen, obra.SemaforoAdministrativo)

	assert.Zero(t, obra.PresupuestoModificado)
	assert.Zero(t, obra.BeneficiariosDirectos)
	assert.Zero(t, obra.AvanceFisico)
	assert.Nil(t, obra.FechaInicioProgramada)
	assert.Nil(t, obra.UltimaActualizacion)
	assert.Equal(t, now, obra.InsertedAt)
}

func TestAssembleObraPopulatedRow(t *testing.T) {
	cells := make([]any, NumColumns)
	cells[1] = "  parque central de tlalpan "
	cells[2] = "Secretaría de Obras"

	// budgets in MDP
	cells[7] = "150.5"
	cells[8] = "100"

	// the seven criteria plus the captured score, which must be ignored
	cells[21] = "3"
	cells[22] = "Medio"
	cells[23] = "5 - Muy Alto"
	cells[24] = "3"
	cells[25] = "3"
	cells[26] = "4"
	cells[27] = "3"
	cells[28] = "9.9"

	// technical and budget lights
	cells[29] = "rojo"
	cells[30] = "ámbar"

	cells[15] = "MANTENIMIENTO URBANO"
	cells[34] = "Tlalpan"
	cells[36] = "2.5 millones"

	// planned start as serial, progress as fraction and percent text
	cells[38] = "45292"
	cells[43] = "0.75"
	cells[44] = "45%"

	now := time.Now().UTC()
	obra := AssembleObra(RowFromCells(cells), now)

	assert.Equal(t, "Parque Central de Tlalpan", obra.Programa)
	assert.Equal(t, "SECRETARÍA DE OBRAS", obra.AreaResponsable)
	assert.Equal(t, "Mantenimiento Urbano", obra.TipoObra)

	assert.Equal(t, 150500000.0, obra.PresupuestoModificado)
	assert.Equal(t, 100000000.0, obra.TotalAnteproyecto)

	assert.Equal(t, 5, obra.Urgencia)
	assert.Equal(t, 4, obra.NivelRiesgo)
	// (3+3+5+3+3+4+3)/7, the captured 9.9 plays no part
	assert.Equal(t, 3.43, obra.PuntuacionPonderada)

	assert.Equal(t, SemaphoreRed, obra.SemaforoTecnico)
	assert.Equal(t, SemaphoreYellow, obra.SemaforoPresupuestal)
	assert.Equal(t, SemaphoreGreen, obra.SemaforoJuridico)

	assert.Equal(t, int64(2500000), obra.BeneficiariosDirectos)
	assert.Equal(t, "2.5 Millones", obra.BeneficiariosTexto)

	require.NotNil(t, obra.FechaInicioProgramada)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *obra.FechaInicioProgramada)

	assert.Equal(t, 75.0, obra.AvanceFisico)
	assert.Equal(t, 45.0, obra.AvanceFinanciero)
}

func TestRowFromCellsPadsAndTruncates(t *testing.T) {
	short := RowFromCells([]any{"1", "obra"})
	assert.Equal(t, "obra", short.Program)
	assert.Nil(t, short.ControlNotes)
	assert.True(t, RowFromCells(nil).IsEmpty())
	assert.False(t, short.IsEmpty())
}
