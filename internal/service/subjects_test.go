package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func setupSubjectService() (*SubjectService, *mockSubjectStore) {
	store := newMockSubjectStore()
	store.programs[1] = true
	return NewSubjectService(store), store
}

func sampleSubject() *domain.Subject {
	return &domain.Subject{
		SubjectName:          "Matemáticas para ingeniería II",
		WeeklyHours:          4,
		TotalHours:           64,
		MonthPeriod:          "mayo - agosto",
		EducationalProgramID: 1,
	}
}

func TestSubjectService_Create(t *testing.T) {
	svc, store := setupSubjectService()

	result := svc.Create(sampleSubject())

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, "Materia registrada", result.Message)
	assert.NotZero(t, result.Data.ID)
	assert.Len(t, store.subjects, 1)
}

func TestSubjectService_Create_MissingProgram(t *testing.T) {
	svc, store := setupSubjectService()

	subject := sampleSubject()
	subject.EducationalProgramID = 999

	result := svc.Create(subject)

	require.Equal(t, KindNotFound, result.Kind)
	assert.Contains(t, result.Message, "programa educativo con id 999")
	assert.Empty(t, store.subjects, "no debe registrarse ninguna fila")
}

func TestSubjectService_CreateMany(t *testing.T) {
	svc, store := setupSubjectService()

	subjects := []*domain.Subject{
		{SubjectName: "Álgebra lineal", WeeklyHours: 4, TotalHours: 64, MonthPeriod: "enero - abril"},
		{SubjectName: "Bases de datos", WeeklyHours: 5, TotalHours: 80, MonthPeriod: "enero - abril"},
	}

	result := svc.CreateMany(1, subjects)

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, "Materias registradas", result.Message)
	assert.Len(t, store.subjects, 2)
	for _, subject := range result.Data {
		assert.Equal(t, int64(1), subject.EducationalProgramID, "todas quedan bajo el programa de la ruta")
	}
}

func TestSubjectService_CreateMany_MissingProgram(t *testing.T) {
	svc, store := setupSubjectService()

	result := svc.CreateMany(999, []*domain.Subject{sampleSubject()})

	require.Equal(t, KindNotFound, result.Kind)
	assert.Equal(t, "Programa educativo no encontrado", result.Message)
	assert.Empty(t, store.subjects)
}

func TestSubjectService_FindAll_Empty(t *testing.T) {
	svc, _ := setupSubjectService()

	result := svc.FindAll()

	require.Equal(t, KindOK, result.Kind, "sin filas no es un error")
	assert.Equal(t, "No se encontraron materias", result.Message)
	assert.Empty(t, result.Data)
}

func TestSubjectService_FindByProgram(t *testing.T) {
	svc, store := setupSubjectService()
	store.programs[2] = true

	require.Equal(t, KindOK, svc.Create(sampleSubject()).Kind)

	other := sampleSubject()
	other.EducationalProgramID = 2
	require.Equal(t, KindOK, svc.Create(other).Kind)

	result := svc.FindByProgram(2)

	require.Equal(t, KindOK, result.Kind)
	require.Len(t, result.Data, 1)
	assert.Equal(t, int64(2), result.Data[0].EducationalProgramID)
}

func TestSubjectService_FindOne_NotFound(t *testing.T) {
	svc, _ := setupSubjectService()

	result := svc.FindOne(42)

	require.Equal(t, KindNotFound, result.Kind)
	assert.Equal(t, "No se encontró la materia", result.Message)
}

func TestSubjectService_Update(t *testing.T) {
	svc, _ := setupSubjectService()

	created := svc.Create(sampleSubject())
	require.Equal(t, KindOK, created.Kind)

	hours := int32(6)
	result := svc.Update(created.Data.ID, SubjectPatch{WeeklyHours: &hours})

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, int32(6), result.Data.WeeklyHours)
	assert.Equal(t, "Matemáticas para ingeniería II", result.Data.SubjectName, "los campos sin parche quedan intactos")
}

func TestSubjectService_Update_MissingProgram(t *testing.T) {
	svc, store := setupSubjectService()

	created := svc.Create(sampleSubject())
	require.Equal(t, KindOK, created.Kind)

	missing := int64(777)
	result := svc.Update(created.Data.ID, SubjectPatch{EducationalProgramID: &missing})

	require.Equal(t, KindNotFound, result.Kind)
	assert.Contains(t, result.Message, "programa educativo con id 777")
	assert.Equal(t, int64(1), store.subjects[created.Data.ID].EducationalProgramID, "el almacén no debe cambiar")
}

func TestSubjectService_Delete(t *testing.T) {
	svc, store := setupSubjectService()

	created := svc.Create(sampleSubject())
	require.Equal(t, KindOK, created.Kind)

	result := svc.Delete(created.Data.ID)

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, "Materia eliminada con éxito", result.Message)
	assert.Empty(t, store.subjects)
}

func TestSubjectService_Delete_NotFound(t *testing.T) {
	svc, _ := setupSubjectService()

	assert.Equal(t, KindNotFound, svc.Delete(42).Kind)
}
