package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func setupTemplateService(now time.Time) (*TemplateService, *mockTemplateStore) {
	store := newMockTemplateStore()
	store.areas[1] = true
	store.staff[100] = true
	store.staff[200] = true

	svc := NewTemplateService(store)
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestTemplateService_Create(t *testing.T) {
	svc, store := setupTemplateService(date(2025, time.February, 1))

	result := svc.Create(&domain.Template{
		AreaID:        1,
		Period:        "enero - abril 2025: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})

	require.Equal(t, KindOK, result.Kind)
	assert.Empty(t, result.Err)
	assert.Equal(t, domain.StatePending, result.Data.State, "el estado por defecto es pendiente")
	assert.Len(t, store.templates, 1)
}

func TestTemplateService_Create_MissingArea(t *testing.T) {
	svc, store := setupTemplateService(date(2025, time.February, 1))

	result := svc.Create(&domain.Template{
		AreaID:        999,
		Period:        "enero - abril 2025: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})

	require.Equal(t, KindNotFound, result.Kind)
	assert.Contains(t, result.Message, "área con id 999")
	assert.Empty(t, store.templates, "no debe registrarse ninguna fila")
}

func TestTemplateService_Create_ReportsEveryMissingKey(t *testing.T) {
	svc, _ := setupTemplateService(date(2025, time.February, 1))

	result := svc.Create(&domain.Template{
		AreaID:        999,
		Period:        "enero - abril 2025: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   777,
	})

	require.Equal(t, KindNotFound, result.Kind)
	assert.Contains(t, result.Message, "área con id 999")
	assert.Contains(t, result.Message, "revisor con id 777")
}

func TestTemplateService_FindAll_EmptyIsSuccess(t *testing.T) {
	svc, _ := setupTemplateService(date(2025, time.February, 1))

	result := svc.FindAll()

	require.Equal(t, KindOK, result.Kind)
	assert.Empty(t, result.Err, "una consulta vacía no es un error")
	assert.Equal(t, "No hay plantillas registradas", result.Message)
	assert.Empty(t, result.Data)
}

func TestTemplateService_FindOne_NotFound(t *testing.T) {
	svc, _ := setupTemplateService(date(2025, time.February, 1))

	result := svc.FindOne(42)

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestTemplateService_FindByArea_MissingArea(t *testing.T) {
	svc, _ := setupTemplateService(date(2025, time.February, 1))

	result := svc.FindByArea(999)

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestTemplateService_Update_WithinPeriod(t *testing.T) {
	svc, store := setupTemplateService(date(2024, time.February, 1))

	created := svc.Create(&domain.Template{
		AreaID:        1,
		Period:        "enero - abril 2024: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})
	require.Equal(t, KindOK, created.Kind)

	state := domain.StateApproved
	result := svc.Update(created.Data.ID, TemplatePatch{State: &state})

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, domain.StateApproved, result.Data.State)
	assert.Equal(t, domain.StateApproved, store.templates[created.Data.ID].State)
}

func TestTemplateService_Update_PeriodLocked(t *testing.T) {
	svc, store := setupTemplateService(date(2024, time.February, 1))

	created := svc.Create(&domain.Template{
		AreaID:        1,
		Period:        "enero - abril 2024: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})
	require.Equal(t, KindOK, created.Kind)

	// El reloj cruza a mayo: la ventana de revisión quedó cerrada
	svc.now = func() time.Time { return date(2024, time.May, 1) }

	state := domain.StateApproved
	result := svc.Update(created.Data.ID, TemplatePatch{State: &state})

	require.Equal(t, KindPeriodLocked, result.Kind)
	assert.Equal(t, domain.StatePending, store.templates[created.Data.ID].State, "el almacén no debe modificarse")
}

func TestTemplateService_Update_MissingForeignKey(t *testing.T) {
	svc, store := setupTemplateService(date(2024, time.February, 1))

	created := svc.Create(&domain.Template{
		AreaID:        1,
		Period:        "enero - abril 2024: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})
	require.Equal(t, KindOK, created.Kind)

	badArea := int64(999)
	result := svc.Update(created.Data.ID, TemplatePatch{AreaID: &badArea})

	require.Equal(t, KindNotFound, result.Kind)
	assert.EqualValues(t, 1, store.templates[created.Data.ID].AreaID)
}

func TestTemplateService_Update_NotFound(t *testing.T) {
	svc, _ := setupTemplateService(date(2024, time.February, 1))

	state := domain.StateApproved
	result := svc.Update(42, TemplatePatch{State: &state})

	assert.Equal(t, KindNotFound, result.Kind)
}

// El borrado no está sujeto al candado de periodo: una plantilla de un
// periodo ya cerrado sigue siendo eliminable.
func TestTemplateService_Delete_IgnoresPeriodLock(t *testing.T) {
	svc, store := setupTemplateService(date(2024, time.February, 1))

	created := svc.Create(&domain.Template{
		AreaID:        1,
		Period:        "enero - abril 2024: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})
	require.Equal(t, KindOK, created.Kind)

	svc.now = func() time.Time { return date(2024, time.September, 1) }

	result := svc.Delete(created.Data.ID)

	require.Equal(t, KindOK, result.Kind)
	assert.Equal(t, created.Data.ID, result.Data.ID)
	assert.Empty(t, store.templates)
}

func TestTemplateService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTemplateService(date(2024, time.February, 1))

	result := svc.Delete(42)

	assert.Equal(t, KindNotFound, result.Kind)
}

func TestTemplateService_FindOne_Idempotent(t *testing.T) {
	svc, _ := setupTemplateService(date(2024, time.February, 1))

	created := svc.Create(&domain.Template{
		AreaID:        1,
		Period:        "enero - abril 2024: Ordinario",
		ResponsibleID: 100,
		RevisedByID:   200,
	})
	require.Equal(t, KindOK, created.Kind)

	first := svc.FindOne(created.Data.ID)
	second := svc.FindOne(created.Data.ID)

	assert.Equal(t, first, second)
}
