package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherMatch(t *testing.T) {
	m := NewMatcher()

	t.Run("single municipality", func(t *testing.T) {
		assert.Equal(t, []string{"Zona Oriente"}, m.Match("Iztapalapa", ""))
	})

	t.Run("accents and case ignored", func(t *testing.T) {
		assert.Equal(t, []string{"Zona Norte"}, m.Match("TLAHUAC", ""))
		assert.Equal(t, []string{"Zona Poniente"}, m.Match("alvaro obregon", ""))
	})

	t.Run("same zone mentioned twice", func(t *testing.T) {
		assert.Equal(t, []string{"Zona Sur"}, m.Match("Coyoacán y Tlalpan", ""))
	})

	t.Run("multiple zones", func(t *testing.T) {
		zones := m.Match("Iztapalapa, Coyoacán", "")
		assert.ElementsMatch(t, []string{"Zona Sur", "Zona Oriente"}, zones)
	})

	t.Run("municipality in scope field", func(t *testing.T) {
		assert.Equal(t, []string{"Zona Oriente"}, m.Match("", "Iztapalapa"))
		assert.Equal(t, []string{"Zona Sur"}, m.Match("obra en proceso", "Delegación Tlalpan"))
	})

	t.Run("city wide keyword in location", func(t *testing.T) {
		assert.Equal(t, ZoneOrder, m.Match("Todas las alcaldías", ""))
	})

	t.Run("city wide keyword in scope", func(t *testing.T) {
		assert.Equal(t, ZoneOrder, m.Match("", "Ciudad Completa"))
		assert.Equal(t, ZoneOrder, m.Match("", "16 alcaldías"))
	})

	t.Run("unknown location", func(t *testing.T) {
		assert.Equal(t, []string{Unassigned}, m.Match("Narnia", ""))
		assert.Equal(t, []string{Unassigned}, m.Match("", ""))
	})
}

func TestAllocateConservesTotals(t *testing.T) {
	m := NewMatcher()
	projects := []Project{
		{ID: 1, Location: "Iztapalapa y Coyoacán", Budget: 100, Beneficiaries: 1000},
		{ID: 2, Location: "Narnia", Budget: 50, Beneficiaries: 200},
		{ID: 3, Location: "Tlalpan", Budget: 30, Beneficiaries: 300},
	}

	stats := m.Allocate(projects)

	assert.InDelta(t, 50, stats["Zona Oriente"].Budget, 1e-9)
	assert.InDelta(t, 80, stats["Zona Sur"].Budget, 1e-9)
	assert.InDelta(t, 50, stats[Unassigned].Budget, 1e-9)

	assert.Equal(t, 2, len(stats["Zona Sur"].ProjectIDs))
	assert.Equal(t, 1, len(stats["Zona Oriente"].ProjectIDs))

	var totalBudget, totalBeneficiaries float64
	for _, zs := range stats {
		totalBudget += zs.Budget
		totalBeneficiaries += zs.Beneficiaries
	}
	assert.InDelta(t, 180, totalBudget, 1e-9)
	assert.InDelta(t, 1500, totalBeneficiaries, 1e-9)
}

func TestFormatForCharts(t *testing.T) {
	m := NewMatcher()
	stats := m.Allocate([]Project{
		{ID: 1, Location: "Iztapalapa", Budget: 100, Beneficiaries: 500},
		{ID: 2, Location: "Narnia", Budget: 25, Beneficiaries: 0},
	})

	data := FormatForCharts(stats)

	require.Len(t, data.Bar, 5)
	assert.Equal(t, []string{"Norte", "Sur", "Centro", "Oriente", "Poniente"},
		[]string{data.Bar[0].Name, data.Bar[1].Name, data.Bar[2].Name, data.Bar[3].Name, data.Bar[4].Name})
	assert.Equal(t, "Centro Histórico", data.Bar[2].FullName)

	// pie keeps full zone names, skips empty zones and appends the
	// unassigned bucket
	require.Len(t, data.Pie, 2)
	assert.Equal(t, "Zona Oriente", data.Pie[0].Name)
	assert.Equal(t, 100.0, data.Pie[0].Value)
	assert.Equal(t, Unassigned, data.Pie[1].Name)
	assert.Equal(t, 25.0, data.Pie[1].Value)

	oriente := data.Bar[3]
	assert.Equal(t, 1, oriente.Projects)
	assert.Equal(t, 500.0, oriente.Beneficiaries)
}

func TestFormatForChartsOmitsEmptyUnassigned(t *testing.T) {
	m := NewMatcher()
	stats := m.Allocate([]Project{{ID: 1, Location: "Tlalpan", Budget: 10}})
	data := FormatForCharts(stats)
	require.Len(t, data.Pie, 1)
	assert.Equal(t, "Zona Sur", data.Pie[0].Name)
}
