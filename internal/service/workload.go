package service

import (
	"errors"
	"strings"
)

// Topes de horas totales por categoría de puesto.
const (
	MinHoursAsignatura = 17
	MaxHoursAsignatura = 32
	HoursFullTime      = 40
)

var errHoursNotAllowed = errors.New("Cantidad de horas no permitida")

// ValidateTotalByPosition aplica el tope de horas según la categoría
// del puesto. La categoría se reconoce por subcadena, sin distinguir
// mayúsculas; los puestos no reconocidos no tienen restricción.
func ValidateTotalByPosition(position string, total int32) error {
	lower := strings.ToLower(position)

	switch {
	case strings.Contains(lower, "de asignatura"):
		if total < MinHoursAsignatura || total > MaxHoursAsignatura {
			return errHoursNotAllowed
		}
	case strings.Contains(lower, "tiempo completo"):
		if total != HoursFullTime {
			return errHoursNotAllowed
		}
	}

	return nil
}
