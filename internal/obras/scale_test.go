package obras

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretScale(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"nil defaults to 1", nil, 1},
		{"empty string", "", 1},
		{"nan string", "NaN", 1},
		{"numeric in range", 3.0, 3},
		{"int in range", 5, 5},
		{"numeric out of range", 6, 1},
		{"leading digit", "4 - Alto", 4},
		{"leading digit em dash", "2 – Bajo", 2},
		{"catalog muy alto", "Muy Alto", 5},
		{"catalog critical", "crítico", 5},
		{"catalog urgente", "Urgente", 5},
		{"catalog media", "Media", 3},
		{"catalog inside phrase", "prioridad alta", 4},
		{"muy alta wins over alta", "Muy Alta", 5},
		{"standalone digit", "nivel 2", 2},
		{"garbage", "pendiente", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretScale(tt.value))
		})
	}
}
