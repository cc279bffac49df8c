package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"github.com/utim-dev/workload-manager/backend/internal/service"
)

type subjectRequest struct {
	SubjectName string `json:"subjectName" validate:"required"`
	WeeklyHours int32  `json:"weeklyHours" validate:"required,gt=0"`
	TotalHours  int32  `json:"totalHours" validate:"required,gt=0"`
	MonthPeriod string `json:"monthPeriod" validate:"required"`
}

func (req *subjectRequest) toDomain() *domain.Subject {
	return &domain.Subject{
		SubjectName: req.SubjectName,
		WeeklyHours: req.WeeklyHours,
		TotalHours:  req.TotalHours,
		MonthPeriod: req.MonthPeriod,
	}
}

func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		subjectRequest
		EducationalProgramID int64 `json:"educationalProgramId" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	subject := req.toDomain()
	subject.EducationalProgramID = req.EducationalProgramID

	writeResult(h, w, r, h.subjects.Create(subject))
}

// CreateManySubjects registra varias materias bajo el programa educativo
// de la ruta.
func (h *Handler) CreateManySubjects(w http.ResponseWriter, r *http.Request) {
	programID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Subjects []subjectRequest `json:"subjects" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	subjects := make([]*domain.Subject, len(req.Subjects))
	for i := range req.Subjects {
		subjects[i] = req.Subjects[i].toDomain()
	}

	writeResult(h, w, r, h.subjects.CreateMany(programID, subjects))
}

func (h *Handler) GetAllSubjects(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("programId"); raw != "" {
		programID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || programID <= 0 {
			h.badRequest(w, r, errors.New("El id del programa no es un número válido"))
			return
		}

		writeResult(h, w, r, h.subjects.FindByProgram(programID))
		return
	}

	writeResult(h, w, r, h.subjects.FindAll())
}

func (h *Handler) GetSubjectsByProgram(w http.ResponseWriter, r *http.Request) {
	programID, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.subjects.FindByProgram(programID))
}

func (h *Handler) GetSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.subjects.FindOne(id))
}

func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		SubjectName          *string `json:"subjectName"`
		WeeklyHours          *int32  `json:"weeklyHours" validate:"omitempty,gt=0"`
		TotalHours           *int32  `json:"totalHours" validate:"omitempty,gt=0"`
		MonthPeriod          *string `json:"monthPeriod"`
		EducationalProgramID *int64  `json:"educationalProgramId" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := service.SubjectPatch{
		SubjectName:          req.SubjectName,
		WeeklyHours:          req.WeeklyHours,
		TotalHours:           req.TotalHours,
		MonthPeriod:          req.MonthPeriod,
		EducationalProgramID: req.EducationalProgramID,
	}

	writeResult(h, w, r, h.subjects.Update(id, patch))
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.subjects.Delete(id))
}
