package service

import (
	"database/sql"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

// TemplateService gobierna el ciclo de vida de las plantillas: valida
// referencias antes de escribir y aplica el candado de periodo en las
// actualizaciones.
type TemplateService struct {
	store TemplateStore
	now   func() time.Time

	// El candado de periodo es una política explícita del servicio:
	// aplica a las plantillas completas pero no a las parciales, y
	// solo a la actualización, nunca al borrado.
	enforcePeriodLock bool
}

func NewTemplateService(store TemplateStore) *TemplateService {
	return &TemplateService{
		store:             store,
		now:               time.Now,
		enforcePeriodLock: true,
	}
}

// TemplatePatch es una actualización parcial: los campos nulos quedan
// intactos.
type TemplatePatch struct {
	State         *string
	AreaID        *int64
	Period        *string
	ResponsibleID *int64
	RevisedByID   *int64
}

func (s *TemplateService) Create(t *domain.Template) Result[*domain.Template] {
	checks := []FKCheck{
		{Field: "área", ID: &t.AreaID, Exists: s.store.ExistsArea},
		{Field: "responsable", ID: &t.ResponsibleID, Exists: s.store.ExistsStaff},
		{Field: "revisor", ID: &t.RevisedByID, Exists: s.store.ExistsStaff},
	}

	invalid, missing, err := CheckForeignKeys(checks)
	if err != nil {
		return storeFailure[*domain.Template]("templates.create", "Error al crear la plantilla", err)
	}
	if len(invalid) > 0 {
		return validationFailed[*domain.Template](strings.Join(invalid, "; "))
	}
	if len(missing) > 0 {
		return notFound[*domain.Template](strings.Join(missing, "; "))
	}

	if t.State == "" {
		t.State = domain.StatePending
	}

	if err := s.store.CreateTemplate(t); err != nil {
		return storeFailure[*domain.Template]("templates.create", "Error al crear la plantilla", err)
	}

	return ok("Plantilla registrada", t)
}

func (s *TemplateService) FindAll() Result[[]*domain.Template] {
	templates, err := s.store.GetAllTemplates()
	if err != nil {
		return storeFailure[[]*domain.Template]("templates.findAll", "Error al consultar las plantillas", err)
	}

	// Una consulta sin filas coincidentes es un éxito, no un error
	if len(templates) == 0 {
		return ok("No hay plantillas registradas", templates)
	}

	return ok("Plantillas encontradas", templates)
}

func (s *TemplateService) FindOne(id int64) Result[*domain.Template] {
	t, err := s.store.GetTemplateByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.Template]("Plantilla no encontrada")
		default:
			return storeFailure[*domain.Template]("templates.findOne", "Error al consultar la plantilla", err)
		}
	}

	return ok("Plantilla obtenida con éxito", t)
}

func (s *TemplateService) FindByArea(areaID int64) Result[[]*domain.Template] {
	exists, err := s.store.ExistsArea(areaID)
	if err != nil {
		return storeFailure[[]*domain.Template]("templates.findByArea", "Error al consultar las plantillas", err)
	}
	if !exists {
		return notFound[[]*domain.Template]("Área no encontrada")
	}

	templates, err := s.store.GetTemplatesByArea(areaID)
	if err != nil {
		return storeFailure[[]*domain.Template]("templates.findByArea", "Error al consultar las plantillas", err)
	}

	if len(templates) == 0 {
		return ok("El área no tiene plantillas registradas", templates)
	}

	return ok("Plantillas encontradas", templates)
}

func (s *TemplateService) FindAllWithPartials() Result[[]*domain.Template] {
	templates, err := s.store.GetAllTemplatesWithPartials()
	if err != nil {
		return storeFailure[[]*domain.Template]("templates.findWithPartials", "Error al consultar las plantillas", err)
	}

	if len(templates) == 0 {
		return ok("No hay plantillas registradas", templates)
	}

	return ok("Plantillas encontradas", templates)
}

func (s *TemplateService) Update(id int64, patch TemplatePatch) Result[*domain.Template] {
	stored, err := s.store.GetTemplateByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.Template]("Plantilla no encontrada")
		default:
			return storeFailure[*domain.Template]("templates.update", "Error al actualizar la plantilla", err)
		}
	}

	checks := []FKCheck{
		{Field: "área", ID: patch.AreaID, Exists: s.store.ExistsArea},
		{Field: "responsable", ID: patch.ResponsibleID, Exists: s.store.ExistsStaff},
		{Field: "revisor", ID: patch.RevisedByID, Exists: s.store.ExistsStaff},
	}

	invalid, missing, err := CheckForeignKeys(checks)
	if err != nil {
		return storeFailure[*domain.Template]("templates.update", "Error al actualizar la plantilla", err)
	}
	if len(invalid) > 0 {
		return validationFailed[*domain.Template](strings.Join(invalid, "; "))
	}
	if len(missing) > 0 {
		return notFound[*domain.Template](strings.Join(missing, "; "))
	}

	// Candado temporal: una plantilla cuyo periodo almacenado ya no es
	// uno de los vigentes quedó cerrada a ediciones.
	currentPeriods := CurrentPeriods(s.now())
	if s.enforcePeriodLock && !slices.Contains(currentPeriods, stored.Period) {
		return periodLocked[*domain.Template]("La plantilla ya no puede ser actualizada: su periodo de revisión terminó")
	}

	if patch.State != nil {
		stored.State = *patch.State
	}
	if patch.AreaID != nil {
		stored.AreaID = *patch.AreaID
	}
	if patch.Period != nil {
		stored.Period = *patch.Period
	}
	if patch.ResponsibleID != nil {
		stored.ResponsibleID = *patch.ResponsibleID
	}
	if patch.RevisedByID != nil {
		stored.RevisedByID = *patch.RevisedByID
	}

	// El UPDATE condiciona sobre el periodo almacenado además de la
	// versión, de modo que la comparación y la escritura sean una sola
	// vuelta a la base y otra petición concurrente no pueda colarse
	// entre ambas.
	if err := s.store.UpdateTemplateInPeriod(stored, currentPeriods); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return periodLocked[*domain.Template]("La plantilla ya no puede ser actualizada, inténtelo de nuevo")
		default:
			return storeFailure[*domain.Template]("templates.update", "Error al actualizar la plantilla", err)
		}
	}

	return ok("Plantilla actualizada", stored)
}

// Delete elimina la plantilla. A diferencia de la actualización, el
// borrado no está sujeto al candado de periodo.
func (s *TemplateService) Delete(id int64) Result[*domain.Template] {
	t, err := s.store.GetTemplateByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.Template]("Plantilla no encontrada")
		default:
			return storeFailure[*domain.Template]("templates.delete", "Error al eliminar la plantilla", err)
		}
	}

	if err := s.store.DeleteTemplate(id); err != nil {
		return storeFailure[*domain.Template]("templates.delete", "Error al eliminar la plantilla", err)
	}

	return ok("Plantilla eliminada", t)
}
