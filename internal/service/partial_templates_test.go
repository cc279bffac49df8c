package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func setupPartialTemplateService() (*PartialTemplateService, *mockPartialTemplateStore) {
	store := newMockPartialTemplateStore()
	store.templates[1] = true
	return NewPartialTemplateService(store), store
}

func samplePartial() *domain.PartialTemplate {
	return &domain.PartialTemplate{
		NT:         100,
		Name:       "María Pérez",
		Gender:     "Femenino",
		Position:   "Docente de asignatura",
		Total:      24,
		Year:       "2025",
		Period:     "enero - abril 2025: Ordinario",
		TemplateID: 1,
	}
}

func TestPartialTemplateService_Create(t *testing.T) {
	svc, store := setupPartialTemplateService()

	result := svc.Create(samplePartial())

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, "Listo, enviado", result.Message)
	assert.Equal(t, domain.StatePending, result.Data.Status, "el estado por defecto es pendiente")
	assert.Len(t, store.partials, 1)
}

func TestPartialTemplateService_Create_HoursOutOfRange(t *testing.T) {
	svc, store := setupPartialTemplateService()

	pt := samplePartial()
	pt.Total = 10

	result := svc.Create(pt)

	require.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, "Cantidad de horas no permitida", result.Message)
	assert.Empty(t, store.partials, "no debe registrarse ninguna fila")
}

func TestPartialTemplateService_Create_FullTimeRequiresForty(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	pt := samplePartial()
	pt.Position = "Docente de tiempo completo"
	pt.Total = 39
	assert.Equal(t, KindValidation, svc.Create(pt).Kind)

	pt = samplePartial()
	pt.Position = "Docente de tiempo completo"
	pt.Total = 40
	assert.Equal(t, KindOK, svc.Create(pt).Kind)
}

func TestPartialTemplateService_Create_MissingTemplate(t *testing.T) {
	svc, store := setupPartialTemplateService()

	pt := samplePartial()
	pt.TemplateID = 999

	result := svc.Create(pt)

	require.Equal(t, KindNotFound, result.Kind)
	assert.Contains(t, result.Message, "plantilla con id 999")
	assert.Empty(t, store.partials)
}

func TestPartialTemplateService_CreateWithActivities(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	activities := []*domain.Activity{
		{ActivityName: "Tutorías", WeeklyHours: 4},
		{ActivityName: "Investigación", WeeklyHours: 6},
	}

	result := svc.CreateWithActivities(samplePartial(), activities)

	require.Equal(t, KindOK, result.Kind)
	for _, activity := range activities {
		assert.Equal(t, result.Data.ID, activity.PartialTemplateID)
	}
}

func TestPartialTemplateService_CreateMany(t *testing.T) {
	svc, store := setupPartialTemplateService()

	pts := []*domain.PartialTemplate{samplePartial(), samplePartial()}
	pts[0].TemplateID = 0
	pts[1].TemplateID = 0

	result := svc.CreateMany(1, pts)

	require.Equal(t, KindOK, result.Kind)
	assert.Len(t, store.partials, 2)
	for _, pt := range result.Data {
		assert.EqualValues(t, 1, pt.TemplateID)
		assert.Equal(t, domain.StatePending, pt.Status)
	}
}

func TestPartialTemplateService_CreateMany_RejectsBatchOnOneBadItem(t *testing.T) {
	svc, store := setupPartialTemplateService()

	bad := samplePartial()
	bad.Total = 50
	pts := []*domain.PartialTemplate{samplePartial(), bad}

	result := svc.CreateMany(1, pts)

	require.Equal(t, KindValidation, result.Kind)
	assert.Empty(t, store.partials, "la inserción es todo o nada")
}

func TestPartialTemplateService_CreateMany_MissingTemplate(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	result := svc.CreateMany(999, []*domain.PartialTemplate{samplePartial()})

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestPartialTemplateService_FindAll_EmptyIsSuccess(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	result := svc.FindAll("")

	require.Equal(t, KindOK, result.Kind)
	assert.Empty(t, result.Err)
	assert.Equal(t, "No se encontraron las plantillas parciales", result.Message)
}

func TestPartialTemplateService_FindAll_FiltersByStatus(t *testing.T) {
	svc, store := setupPartialTemplateService()

	approved := samplePartial()
	approved.Status = domain.StateApproved
	require.Equal(t, KindOK, svc.Create(samplePartial()).Kind)
	require.Equal(t, KindOK, svc.Create(approved).Kind)

	result := svc.FindAll(domain.StateApproved)

	require.Equal(t, KindOK, result.Kind)
	require.Len(t, result.Data, 1)
	assert.Equal(t, domain.StateApproved, result.Data[0].Status)
	assert.Equal(t, domain.StateApproved, store.lastStatus)
}

// Un filtro que no es un estado permitido se descarta y la consulta
// devuelve todas las filas.
func TestPartialTemplateService_FindAll_DiscardsUnknownStatus(t *testing.T) {
	svc, store := setupPartialTemplateService()

	require.Equal(t, KindOK, svc.Create(samplePartial()).Kind)

	result := svc.FindAll("inexistente")

	require.Equal(t, KindOK, result.Kind)
	assert.Len(t, result.Data, 1)
	assert.Empty(t, store.lastStatus)
}

func TestPartialTemplateService_FindOne_NotFound(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	result := svc.FindOne(42)

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestPartialTemplateService_Update(t *testing.T) {
	svc, store := setupPartialTemplateService()

	created := svc.Create(samplePartial())
	require.Equal(t, KindOK, created.Kind)

	total := int32(30)
	result := svc.Update(created.Data.ID, PartialTemplatePatch{Total: &total})

	require.Equal(t, KindOK, result.Kind)
	assert.EqualValues(t, 30, result.Data.Total)
	assert.EqualValues(t, 30, store.partials[created.Data.ID].Total)
}

// El tope de horas se valida sobre la vista fusionada: cambiar solo el
// puesto puede dejar inválido el total ya almacenado.
func TestPartialTemplateService_Update_ValidatesMergedView(t *testing.T) {
	svc, store := setupPartialTemplateService()

	created := svc.Create(samplePartial())
	require.Equal(t, KindOK, created.Kind)

	position := "Docente de tiempo completo"
	result := svc.Update(created.Data.ID, PartialTemplatePatch{Position: &position})

	require.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, "Cantidad de horas no permitida", result.Message)
	assert.Equal(t, "Docente de asignatura", store.partials[created.Data.ID].Position, "el almacén no debe modificarse")
}

func TestPartialTemplateService_Update_MissingTemplate(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	created := svc.Create(samplePartial())
	require.Equal(t, KindOK, created.Kind)

	badTemplate := int64(999)
	result := svc.Update(created.Data.ID, PartialTemplatePatch{TemplateID: &badTemplate})

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestPartialTemplateService_Update_NotFound(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	total := int32(30)
	result := svc.Update(42, PartialTemplatePatch{Total: &total})

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestPartialTemplateService_Delete(t *testing.T) {
	svc, store := setupPartialTemplateService()

	created := svc.Create(samplePartial())
	require.Equal(t, KindOK, created.Kind)

	result := svc.Delete(created.Data.ID)

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, created.Data.ID, result.Data.ID)
	assert.Empty(t, store.partials)
}

func TestPartialTemplateService_Delete_NotFound(t *testing.T) {
	svc, _ := setupPartialTemplateService()

	result := svc.Delete(42)

	assert.Equal(t, KindNotFound, result.Kind)
}
