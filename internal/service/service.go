// Package service contiene las reglas de negocio del ciclo de vida de
// las plantillas de carga académica: validación referencial, tope de
// horas por puesto y candado de periodo. Los handlers HTTP solo
// traducen los resultados a códigos de estado.
package service

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindValidation
	KindPeriodLocked
	KindStore
)

// Contenido del campo error del sobre según la causa del fallo.
const (
	errNotFound     = "No encontrado"
	errValidation   = "Error de validación"
	errPeriodLocked = "Periodo cerrado"
	errStore        = "Error en la operación"
)

// Result es el sobre uniforme {message, error, data} de toda operación
// del núcleo. Error va vacío en éxito; Kind permite al llamador
// distinguir la causa sin analizar el texto.
type Result[T any] struct {
	Kind    Kind
	Message string
	Err     string
	Data    T
}

func ok[T any](message string, data T) Result[T] {
	return Result[T]{Kind: KindOK, Message: message, Data: data}
}

func notFound[T any](message string) Result[T] {
	return Result[T]{Kind: KindNotFound, Message: message, Err: errNotFound}
}

func validationFailed[T any](message string) Result[T] {
	return Result[T]{Kind: KindValidation, Message: message, Err: errValidation}
}

func periodLocked[T any](message string) Result[T] {
	return Result[T]{Kind: KindPeriodLocked, Message: message, Err: errPeriodLocked}
}

// storeFailure registra el detalle del error de persistencia y devuelve
// un sobre con un mensaje apto para el usuario. Las violaciones de
// restricciones conocidas se traducen; el resto usa el mensaje genérico
// de la operación.
func storeFailure[T any](op string, fallback string, err error) Result[T] {
	slog.Error("error de la base de datos", "op", op, "error", err)

	message := fallback
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			message = "Violación de unicidad (el registro ya existe)"
		case "23503":
			message = "Violación de la restricción de clave foránea"
		case "23514":
			message = "Violación de la restricción de chequeo"
		}
	}

	return Result[T]{Kind: KindStore, Message: message, Err: errStore}
}

// TemplateStore es la porción del almacén que necesita el ciclo de vida
// de las plantillas.
type TemplateStore interface {
	ExistsArea(id int64) (bool, error)
	ExistsStaff(nt int64) (bool, error)
	ExistsTemplate(id int64) (bool, error)
	CreateTemplate(t *domain.Template) error
	GetAllTemplates() ([]*domain.Template, error)
	GetTemplateByID(id int64) (*domain.Template, error)
	GetTemplatesByArea(areaID int64) ([]*domain.Template, error)
	GetAllTemplatesWithPartials() ([]*domain.Template, error)
	UpdateTemplateInPeriod(t *domain.Template, currentPeriods []string) error
	DeleteTemplate(id int64) error
}

// SubjectStore es la porción del almacén que necesita el catálogo de
// materias.
type SubjectStore interface {
	ExistsEducationalProgram(id int64) (bool, error)
	CreateSubject(subject *domain.Subject) error
	CreateSubjects(subjects []*domain.Subject) error
	GetAllSubjects() ([]*domain.Subject, error)
	GetSubjectsByProgram(programID int64) ([]*domain.Subject, error)
	GetSubjectByID(id int64) (*domain.Subject, error)
	UpdateSubject(subject *domain.Subject) error
	DeleteSubject(id int64) error
}

// PartialTemplateStore es la porción del almacén que necesita el ciclo
// de vida de las plantillas parciales.
type PartialTemplateStore interface {
	ExistsTemplate(id int64) (bool, error)
	CreatePartialTemplate(pt *domain.PartialTemplate) error
	CreatePartialTemplates(pts []*domain.PartialTemplate) error
	CreatePartialTemplateWithActivities(pt *domain.PartialTemplate, activities []*domain.Activity) error
	GetAllPartialTemplates(status string) ([]*domain.PartialTemplate, error)
	GetPartialTemplateByID(id int64) (*domain.PartialTemplate, error)
	GetPartialTemplateWithActivities(id int64) (*domain.PartialTemplate, error)
	GetAllPartialTemplatesWithActivities(status string) ([]*domain.PartialTemplate, error)
	GetPartialTemplateWithComments(id int64) (*domain.PartialTemplate, error)
	GetAllPartialTemplatesWithComments(status string) ([]*domain.PartialTemplate, error)
	UpdatePartialTemplate(pt *domain.PartialTemplate) error
	DeletePartialTemplate(id int64) error
}
