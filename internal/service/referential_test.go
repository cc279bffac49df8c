package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCheckForeignKeys_SkipsAbsentFields(t *testing.T) {
	calls := 0
	exists := func(id int64) (bool, error) {
		calls++
		return true, nil
	}

	invalid, missing, err := CheckForeignKeys([]FKCheck{
		{Field: "área", ID: nil, Exists: exists},
		{Field: "plantilla", ID: int64Ptr(1), Exists: exists},
	})

	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Empty(t, missing)
	assert.Equal(t, 1, calls, "los campos ausentes no deben consultarse")
}

func TestCheckForeignKeys_RejectsNonPositiveIDsBeforeIO(t *testing.T) {
	calls := 0
	exists := func(id int64) (bool, error) {
		calls++
		return true, nil
	}

	invalid, missing, err := CheckForeignKeys([]FKCheck{
		{Field: "área", ID: int64Ptr(0), Exists: exists},
		{Field: "plantilla", ID: int64Ptr(1), Exists: exists},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"El campo área debe ser un entero positivo"}, invalid)
	assert.Empty(t, missing)
	assert.Equal(t, 0, calls, "un id inválido debe rechazarse sin tocar el almacén")
}

func TestCheckForeignKeys_CollectsEveryMissingKey(t *testing.T) {
	exists := func(known int64) func(int64) (bool, error) {
		return func(id int64) (bool, error) {
			return id == known, nil
		}
	}

	invalid, missing, err := CheckForeignKeys([]FKCheck{
		{Field: "área", ID: int64Ptr(999), Exists: exists(1)},
		{Field: "responsable", ID: int64Ptr(100), Exists: exists(100)},
		{Field: "revisor", ID: int64Ptr(888), Exists: exists(200)},
	})

	require.NoError(t, err)
	assert.Empty(t, invalid)
	// Se reportan todas las claves faltantes, en el orden declarado
	assert.Equal(t, []string{
		"área con id 999 no encontrado",
		"revisor con id 888 no encontrado",
	}, missing)
}

func TestCheckForeignKeys_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("conexión rechazada")

	_, _, err := CheckForeignKeys([]FKCheck{
		{Field: "área", ID: int64Ptr(1), Exists: func(id int64) (bool, error) {
			return false, storeErr
		}},
	})

	assert.ErrorIs(t, err, storeErr)
}
