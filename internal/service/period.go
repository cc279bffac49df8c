package service

import (
	"fmt"
	"time"
)

// El calendario académico se divide en tres cuatrimestres fijos; cada
// uno existe en variante ordinaria y extraordinaria.

// CurrentPeriod devuelve la etiqueta del cuatrimestre que contiene el
// instante dado.
func CurrentPeriod(now time.Time, extraordinary bool) string {
	var band string
	switch month := int(now.Month()); {
	case month <= 4:
		band = "enero - abril"
	case month <= 8:
		band = "mayo - agosto"
	default:
		band = "septiembre - diciembre"
	}

	variant := "Ordinario"
	if extraordinary {
		variant = "Extraordinario"
	}

	return fmt.Sprintf("%s %d: %s", band, now.Year(), variant)
}

// CurrentPeriods devuelve las dos etiquetas vigentes (ordinaria y
// extraordinaria) para el instante dado.
func CurrentPeriods(now time.Time) []string {
	return []string{CurrentPeriod(now, false), CurrentPeriod(now, true)}
}
