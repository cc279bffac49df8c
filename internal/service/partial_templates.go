package service

import (
	"database/sql"
	"errors"
	"slices"
	"strings"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

// PartialTemplateService gobierna las plantillas parciales: valida la
// plantilla padre y el tope de horas por puesto. No aplica el candado
// de periodo; las parciales se corrigen aun con la ventana cerrada.
type PartialTemplateService struct {
	store PartialTemplateStore
}

func NewPartialTemplateService(store PartialTemplateStore) *PartialTemplateService {
	return &PartialTemplateService{
		store: store,
	}
}

// PartialTemplatePatch es una actualización parcial: los campos nulos
// quedan intactos.
type PartialTemplatePatch struct {
	NT         *int64
	Name       *string
	Gender     *string
	Position   *string
	Total      *int32
	Status     *string
	Year       *string
	Period     *string
	TemplateID *int64
}

// statusFilter descarta filtros que no sean un estado permitido.
func statusFilter(status string) string {
	if slices.Contains(domain.AllowedStates, status) {
		return status
	}
	return ""
}

func (s *PartialTemplateService) validateBeforeCreate(pt *domain.PartialTemplate) *Result[*domain.PartialTemplate] {
	checks := []FKCheck{
		{Field: "plantilla", ID: &pt.TemplateID, Exists: s.store.ExistsTemplate},
	}

	invalid, missing, err := CheckForeignKeys(checks)
	if err != nil {
		failure := storeFailure[*domain.PartialTemplate]("partialTemplates.create", "Error al crear la plantilla parcial", err)
		return &failure
	}
	if len(invalid) > 0 {
		failure := validationFailed[*domain.PartialTemplate](strings.Join(invalid, "; "))
		return &failure
	}
	if len(missing) > 0 {
		failure := notFound[*domain.PartialTemplate](strings.Join(missing, "; "))
		return &failure
	}

	if err := ValidateTotalByPosition(pt.Position, pt.Total); err != nil {
		failure := validationFailed[*domain.PartialTemplate](err.Error())
		return &failure
	}

	if pt.Status == "" {
		pt.Status = domain.StatePending
	}

	return nil
}

func (s *PartialTemplateService) Create(pt *domain.PartialTemplate) Result[*domain.PartialTemplate] {
	if failure := s.validateBeforeCreate(pt); failure != nil {
		return *failure
	}

	if err := s.store.CreatePartialTemplate(pt); err != nil {
		return storeFailure[*domain.PartialTemplate]("partialTemplates.create", "Error al crear la plantilla parcial", err)
	}

	return ok("Listo, enviado", pt)
}

// CreateWithActivities registra la plantilla parcial junto con sus
// actividades en una sola transacción.
func (s *PartialTemplateService) CreateWithActivities(pt *domain.PartialTemplate, activities []*domain.Activity) Result[*domain.PartialTemplate] {
	if failure := s.validateBeforeCreate(pt); failure != nil {
		return *failure
	}

	if err := s.store.CreatePartialTemplateWithActivities(pt, activities); err != nil {
		return storeFailure[*domain.PartialTemplate]("partialTemplates.createWithActivities", "Error al crear la plantilla parcial", err)
	}

	return ok("Plantilla parcial creada con éxito", pt)
}

// CreateMany registra varias plantillas parciales bajo una misma
// plantilla padre; la inserción es todo o nada.
func (s *PartialTemplateService) CreateMany(templateID int64, pts []*domain.PartialTemplate) Result[[]*domain.PartialTemplate] {
	exists, err := s.store.ExistsTemplate(templateID)
	if err != nil {
		return storeFailure[[]*domain.PartialTemplate]("partialTemplates.createMany", "Error al crear las plantillas parciales", err)
	}
	if !exists {
		return notFound[[]*domain.PartialTemplate]("Plantilla no encontrada")
	}

	for _, pt := range pts {
		pt.TemplateID = templateID
		if err := ValidateTotalByPosition(pt.Position, pt.Total); err != nil {
			return validationFailed[[]*domain.PartialTemplate](err.Error())
		}
		if pt.Status == "" {
			pt.Status = domain.StatePending
		}
	}

	if err := s.store.CreatePartialTemplates(pts); err != nil {
		return storeFailure[[]*domain.PartialTemplate]("partialTemplates.createMany", "Error al crear las plantillas parciales", err)
	}

	return ok("Plantillas parciales creadas con éxito", pts)
}

func (s *PartialTemplateService) findAll(op string, status string, get func(string) ([]*domain.PartialTemplate, error)) Result[[]*domain.PartialTemplate] {
	pts, err := get(statusFilter(status))
	if err != nil {
		return storeFailure[[]*domain.PartialTemplate](op, "Error al obtener las plantillas parciales", err)
	}

	if len(pts) == 0 {
		return ok("No se encontraron las plantillas parciales", pts)
	}

	return ok("Plantillas parciales obtenidas con éxito", pts)
}

func (s *PartialTemplateService) FindAll(status string) Result[[]*domain.PartialTemplate] {
	return s.findAll("partialTemplates.findAll", status, s.store.GetAllPartialTemplates)
}

func (s *PartialTemplateService) FindAllWithActivities(status string) Result[[]*domain.PartialTemplate] {
	return s.findAll("partialTemplates.findAllWithActivities", status, s.store.GetAllPartialTemplatesWithActivities)
}

func (s *PartialTemplateService) FindAllWithComments(status string) Result[[]*domain.PartialTemplate] {
	return s.findAll("partialTemplates.findAllWithComments", status, s.store.GetAllPartialTemplatesWithComments)
}

func (s *PartialTemplateService) findOne(op string, id int64, get func(int64) (*domain.PartialTemplate, error)) Result[*domain.PartialTemplate] {
	pt, err := get(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.PartialTemplate]("No se encontró la plantilla parcial")
		default:
			return storeFailure[*domain.PartialTemplate](op, "Error al obtener la plantilla parcial", err)
		}
	}

	return ok("Plantilla parcial obtenida con éxito", pt)
}

func (s *PartialTemplateService) FindOne(id int64) Result[*domain.PartialTemplate] {
	return s.findOne("partialTemplates.findOne", id, s.store.GetPartialTemplateByID)
}

func (s *PartialTemplateService) FindOneWithActivities(id int64) Result[*domain.PartialTemplate] {
	return s.findOne("partialTemplates.findOneWithActivities", id, s.store.GetPartialTemplateWithActivities)
}

func (s *PartialTemplateService) FindOneWithComments(id int64) Result[*domain.PartialTemplate] {
	return s.findOne("partialTemplates.findOneWithComments", id, s.store.GetPartialTemplateWithComments)
}

func (s *PartialTemplateService) Update(id int64, patch PartialTemplatePatch) Result[*domain.PartialTemplate] {
	stored, err := s.store.GetPartialTemplateByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.PartialTemplate]("No se encontró la plantilla parcial")
		default:
			return storeFailure[*domain.PartialTemplate]("partialTemplates.update", "Error al actualizar la plantilla parcial", err)
		}
	}

	checks := []FKCheck{
		{Field: "plantilla", ID: patch.TemplateID, Exists: s.store.ExistsTemplate},
	}

	invalid, missing, err := CheckForeignKeys(checks)
	if err != nil {
		return storeFailure[*domain.PartialTemplate]("partialTemplates.update", "Error al actualizar la plantilla parcial", err)
	}
	if len(invalid) > 0 {
		return validationFailed[*domain.PartialTemplate](strings.Join(invalid, "; "))
	}
	if len(missing) > 0 {
		return notFound[*domain.PartialTemplate](strings.Join(missing, "; "))
	}

	if patch.NT != nil {
		stored.NT = *patch.NT
	}
	if patch.Name != nil {
		stored.Name = *patch.Name
	}
	if patch.Gender != nil {
		stored.Gender = *patch.Gender
	}
	if patch.Position != nil {
		stored.Position = *patch.Position
	}
	if patch.Total != nil {
		stored.Total = *patch.Total
	}
	if patch.Status != nil {
		stored.Status = *patch.Status
	}
	if patch.Year != nil {
		stored.Year = *patch.Year
	}
	if patch.Period != nil {
		stored.Period = *patch.Period
	}
	if patch.TemplateID != nil {
		stored.TemplateID = *patch.TemplateID
	}

	// El tope de horas se valida sobre la vista fusionada, no sobre el
	// parche aislado: un parche que solo cambia el puesto puede dejar
	// inválido el total ya almacenado.
	if err := ValidateTotalByPosition(stored.Position, stored.Total); err != nil {
		return validationFailed[*domain.PartialTemplate](err.Error())
	}

	if err := s.store.UpdatePartialTemplate(stored); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Conflicto de versión con otra petición concurrente
			return storeFailure[*domain.PartialTemplate]("partialTemplates.update", "Inténtelo de nuevo", err)
		default:
			return storeFailure[*domain.PartialTemplate]("partialTemplates.update", "Error al actualizar la plantilla parcial", err)
		}
	}

	return ok("Plantilla parcial actualizada", stored)
}

func (s *PartialTemplateService) Delete(id int64) Result[*domain.PartialTemplate] {
	pt, err := s.store.GetPartialTemplateByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.PartialTemplate]("No se encontró la plantilla parcial")
		default:
			return storeFailure[*domain.PartialTemplate]("partialTemplates.delete", "Error al eliminar la plantilla parcial", err)
		}
	}

	if err := s.store.DeletePartialTemplate(id); err != nil {
		return storeFailure[*domain.PartialTemplate]("partialTemplates.delete", "Error al eliminar la plantilla parcial", err)
	}

	return ok("Plantilla parcial eliminada con éxito", pt)
}
