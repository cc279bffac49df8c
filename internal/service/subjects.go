package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

// SubjectService gobierna el catálogo de materias por programa
// educativo. Su única regla es la validación referencial del programa
// padre.
type SubjectService struct {
	store SubjectStore
}

func NewSubjectService(store SubjectStore) *SubjectService {
	return &SubjectService{
		store: store,
	}
}

// SubjectPatch es una actualización parcial: los campos nulos quedan
// intactos.
type SubjectPatch struct {
	SubjectName          *string
	WeeklyHours          *int32
	TotalHours           *int32
	MonthPeriod          *string
	EducationalProgramID *int64
}

func (s *SubjectService) Create(subject *domain.Subject) Result[*domain.Subject] {
	checks := []FKCheck{
		{Field: "programa educativo", ID: &subject.EducationalProgramID, Exists: s.store.ExistsEducationalProgram},
	}

	invalid, missing, err := CheckForeignKeys(checks)
	if err != nil {
		return storeFailure[*domain.Subject]("subjects.create", "Error al registrar la materia", err)
	}
	if len(invalid) > 0 {
		return validationFailed[*domain.Subject](strings.Join(invalid, "; "))
	}
	if len(missing) > 0 {
		return notFound[*domain.Subject](strings.Join(missing, "; "))
	}

	if err := s.store.CreateSubject(subject); err != nil {
		return storeFailure[*domain.Subject]("subjects.create", "Error al registrar la materia", err)
	}

	return ok("Materia registrada", subject)
}

// CreateMany registra varias materias bajo un mismo programa educativo;
// la inserción es todo o nada.
func (s *SubjectService) CreateMany(programID int64, subjects []*domain.Subject) Result[[]*domain.Subject] {
	exists, err := s.store.ExistsEducationalProgram(programID)
	if err != nil {
		return storeFailure[[]*domain.Subject]("subjects.createMany", "Error al registrar las materias", err)
	}
	if !exists {
		return notFound[[]*domain.Subject]("Programa educativo no encontrado")
	}

	for _, subject := range subjects {
		subject.EducationalProgramID = programID
	}

	if err := s.store.CreateSubjects(subjects); err != nil {
		return storeFailure[[]*domain.Subject]("subjects.createMany", "Error al registrar las materias", err)
	}

	return ok("Materias registradas", subjects)
}

func (s *SubjectService) findMany(op string, get func() ([]*domain.Subject, error)) Result[[]*domain.Subject] {
	subjects, err := get()
	if err != nil {
		return storeFailure[[]*domain.Subject](op, "Error al obtener las materias", err)
	}

	if len(subjects) == 0 {
		return ok("No se encontraron materias", subjects)
	}

	return ok("Materias obtenidas con éxito", subjects)
}

func (s *SubjectService) FindAll() Result[[]*domain.Subject] {
	return s.findMany("subjects.findAll", s.store.GetAllSubjects)
}

func (s *SubjectService) FindByProgram(programID int64) Result[[]*domain.Subject] {
	return s.findMany("subjects.findByProgram", func() ([]*domain.Subject, error) {
		return s.store.GetSubjectsByProgram(programID)
	})
}

func (s *SubjectService) FindOne(id int64) Result[*domain.Subject] {
	subject, err := s.store.GetSubjectByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.Subject]("No se encontró la materia")
		default:
			return storeFailure[*domain.Subject]("subjects.findOne", "Error al obtener la materia", err)
		}
	}

	return ok("Materia obtenida con éxito", subject)
}

func (s *SubjectService) Update(id int64, patch SubjectPatch) Result[*domain.Subject] {
	stored, err := s.store.GetSubjectByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.Subject]("No se encontró la materia")
		default:
			return storeFailure[*domain.Subject]("subjects.update", "Error al actualizar la materia", err)
		}
	}

	checks := []FKCheck{
		{Field: "programa educativo", ID: patch.EducationalProgramID, Exists: s.store.ExistsEducationalProgram},
	}

	invalid, missing, err := CheckForeignKeys(checks)
	if err != nil {
		return storeFailure[*domain.Subject]("subjects.update", "Error al actualizar la materia", err)
	}
	if len(invalid) > 0 {
		return validationFailed[*domain.Subject](strings.Join(invalid, "; "))
	}
	if len(missing) > 0 {
		return notFound[*domain.Subject](strings.Join(missing, "; "))
	}

	if patch.SubjectName != nil {
		stored.SubjectName = *patch.SubjectName
	}
	if patch.WeeklyHours != nil {
		stored.WeeklyHours = *patch.WeeklyHours
	}
	if patch.TotalHours != nil {
		stored.TotalHours = *patch.TotalHours
	}
	if patch.MonthPeriod != nil {
		stored.MonthPeriod = *patch.MonthPeriod
	}
	if patch.EducationalProgramID != nil {
		stored.EducationalProgramID = *patch.EducationalProgramID
	}

	if err := s.store.UpdateSubject(stored); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Conflicto de versión con otra petición concurrente
			return storeFailure[*domain.Subject]("subjects.update", "Inténtelo de nuevo", err)
		default:
			return storeFailure[*domain.Subject]("subjects.update", "Error al actualizar la materia", err)
		}
	}

	return ok("Materia actualizada", stored)
}

func (s *SubjectService) Delete(id int64) Result[*domain.Subject] {
	subject, err := s.store.GetSubjectByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return notFound[*domain.Subject]("No se encontró la materia")
		default:
			return storeFailure[*domain.Subject]("subjects.delete", "Error al eliminar la materia", err)
		}
	}

	if err := s.store.DeleteSubject(id); err != nil {
		return storeFailure[*domain.Subject]("subjects.delete", "Error al eliminar la materia", err)
	}

	return ok("Materia eliminada con éxito", subject)
}
