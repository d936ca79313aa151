package obras

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "tlahuac", Normalize("  Tláhuac "))
	assert.Equal(t, "alvaro obregon", Normalize("Álvaro Obregón"))
	assert.Equal(t, "", Normalize("   "))
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"parque de la ciudad", "Parque de la Ciudad"},
		{"GUSTAVO A. MADERO", "Gustavo A. Madero"},
		{"rehabilitacion del mercado", "Rehabilitacion del Mercado"},
		{"de primera palabra", "De Primera Palabra"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.in))
	}
}

func TestCleanTextDefaults(t *testing.T) {
	assert.Equal(t, "Sin nombre", CleanText(nil, "programa"))
	assert.Equal(t, "Sin nombre", CleanText("  ", "programa"))
	assert.Equal(t, "No asignado", CleanText("nan", "contratista"))
	assert.Equal(t, "Dirección General", CleanText("", "area_responsable"))
	assert.Equal(t, "No especificado", CleanText("", "tipo_obra"))
	assert.Equal(t, "Pavimentación", CleanText(" Pavimentación ", "tipo_obra"))
}

func TestCleanTextUpper(t *testing.T) {
	assert.Equal(t, "SECRETARÍA DE OBRAS", CleanTextUpper("Secretaría de Obras", "area_responsable"))
	assert.Equal(t, "DIRECCIÓN GENERAL", CleanTextUpper("", "area_responsable"))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "", PlainText(nil))
	assert.Equal(t, "", PlainText("NaN"))
	assert.Equal(t, "texto", PlainText("  texto "))
}

func TestCleanSemaphore(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"rojo", SemaphoreRed},
		{"R", SemaphoreRed},
		{"RED", SemaphoreRed},
		{"Amarillo", SemaphoreYellow},
		{"Ámbar", SemaphoreYellow},
		{"yellow", SemaphoreYellow},
		{"verde", SemaphoreGreen},
		{"", SemaphoreGreen},
		{nil, SemaphoreGreen},
		{"desconocido", SemaphoreGreen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanSemaphore(tt.in))
	}
}
