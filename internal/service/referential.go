package service

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FKCheck describe una clave foránea a verificar contra el almacén.
// Un ID nulo significa que el campo no vino en la petición y se omite
// (las actualizaciones parciales no revalidan campos intactos).
type FKCheck struct {
	Field  string
	ID     *int64
	Exists func(id int64) (bool, error)
}

// CheckForeignKeys verifica todas las claves foráneas presentes.
//
// Los ids no positivos se rechazan de forma síncrona, antes de tocar el
// almacén. Las consultas de existencia se lanzan en paralelo y se
// espera a todas: se reporta cada clave faltante, no solo la primera,
// para que una sola petición muestre todo lo inválido de una vez.
func CheckForeignKeys(checks []FKCheck) (invalid []string, missing []string, err error) {
	for _, check := range checks {
		if check.ID != nil && *check.ID <= 0 {
			invalid = append(invalid, fmt.Sprintf("El campo %s debe ser un entero positivo", check.Field))
		}
	}
	if len(invalid) > 0 {
		return invalid, nil, nil
	}

	// Una posición por verificación para que el orden del reporte no
	// dependa de qué goroutine termina primero.
	results := make([]string, len(checks))

	g := new(errgroup.Group)
	for i, check := range checks {
		if check.ID == nil {
			continue
		}

		// Copias por iteración: con la directiva go 1.21 las variables
		// del bucle se comparten entre iteraciones.
		i, check := i, check
		g.Go(func() error {
			exists, err := check.Exists(*check.ID)
			if err != nil {
				return err
			}
			if !exists {
				results[i] = fmt.Sprintf("%s con id %d no encontrado", check.Field, *check.ID)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for _, result := range results {
		if result != "" {
			missing = append(missing, result)
		}
	}

	return nil, missing, nil
}
