package obras

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMoney(t *testing.T) {
	tests := []struct {
		name  string
		value any
		isMDP bool
		want  float64
	}{
		{"plain number", "1234.56", false, 1234.56},
		{"currency symbol and commas", "$1,234.56", false, 1234.56},
		{"embedded spaces", "1 500 000", false, 1500000},
		{"mdp scaled to pesos", "12.5", true, 12500000},
		{"numeric cell mdp", 150.5, true, 150500000},
		{"negative clamps to zero", -5.0, false, 0},
		{"garbage", "por definir", false, 0},
		{"nil", nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMoney(tt.value, tt.isMDP))
		})
	}
}

func TestCleanPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"percent sign stripped", "45%", 45},
		{"plain value", 85.0, 85},
		{"fraction scales up", 0.5, 50},
		{"fraction string", "0.75", 75},
		{"one means complete", 1.0, 100},
		{"above range clamps", 150.0, 100},
		{"negative clamps", -10.0, 0},
		{"garbage", "n/a", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPercentage(tt.value))
		})
	}
}

func TestCleanBeneficiaries(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{"plain count", "1500 personas", 1500},
		{"numeric cell", 2500, 2500},
		{"millions word", "2.5 millones", 2500000},
		{"million singular accented", "1 millón de habitantes", 1000000},
		{"thousands word", "500 mil", 500000},
		{"k abbreviation", "10k", 10000},
		{"billions", "1.2 miles de millones", 1200000000},
		{"comma separated", "1,200,000", 1200000},
		{"no number", "sin dato", 0},
		{"empty", "", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanBeneficiaries(tt.value))
		})
	}
}
