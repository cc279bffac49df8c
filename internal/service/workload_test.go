package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTotalByPosition_Asignatura(t *testing.T) {
	tests := []struct {
		total int32
		valid bool
	}{
		{16, false},
		{17, true},
		{24, true},
		{32, true},
		{33, false},
	}

	for _, tt := range tests {
		err := ValidateTotalByPosition("Profesor de Asignatura", tt.total)
		if tt.valid {
			assert.NoError(t, err, "total %d", tt.total)
		} else {
			assert.EqualError(t, err, "Cantidad de horas no permitida", "total %d", tt.total)
		}
	}
}

func TestValidateTotalByPosition_TiempoCompleto(t *testing.T) {
	assert.Error(t, ValidateTotalByPosition("Profesor de Tiempo Completo", 39))
	assert.NoError(t, ValidateTotalByPosition("Profesor de Tiempo Completo", 40))
	assert.Error(t, ValidateTotalByPosition("Profesor de Tiempo Completo", 41))
}

func TestValidateTotalByPosition_CaseInsensitive(t *testing.T) {
	assert.Error(t, ValidateTotalByPosition("PROFESOR DE ASIGNATURA", 10))
	assert.NoError(t, ValidateTotalByPosition("profesor de tiempo completo", 40))
}

// Los puestos no reconocidos no tienen restricción de horas.
func TestValidateTotalByPosition_UnknownPosition(t *testing.T) {
	assert.NoError(t, ValidateTotalByPosition("Director de División", 3))
	assert.NoError(t, ValidateTotalByPosition("Técnico Académico", 55))
}
