package handler

import (
	"database/sql"
	"errors"
	"net/http"
)

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		activityRequest
		PartialTemplateID int64 `json:"partialTemplateId" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	exists, err := h.repository.ExistsPartialTemplate(req.PartialTemplateID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !exists {
		h.notFoundResponse(w, r, "Plantilla parcial no encontrada")
		return
	}

	if req.EducationalProgramID != nil {
		exists, err := h.repository.ExistsEducationalProgram(*req.EducationalProgramID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !exists {
			h.notFoundResponse(w, r, "Programa educativo no encontrado")
			return
		}
	}

	activity := req.toDomain()
	activity.PartialTemplateID = req.PartialTemplateID

	if err := h.repository.CreateActivity(activity); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Actividad registrada con éxito", activity)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	activity, err := h.repository.GetActivityByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Actividad no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Actividad obtenida con éxito", activity)
}

func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		EducationalProgramID   *int64    `json:"educationalProgramId" validate:"omitempty,gt=0"`
		ActivityDistribution   *string   `json:"activityDistribution"`
		ManagementType         *string   `json:"managementType"`
		StayType               *string   `json:"stayType"`
		ActivityName           *string   `json:"activityName"`
		GradeGroups            *[]string `json:"gradeGroups"`
		WeeklyHours            *int32    `json:"weeklyHours" validate:"omitempty,gte=0"`
		SubtotalClassification *int32    `json:"subtotalClassification" validate:"omitempty,gte=0"`
		NumberStudents         *int32    `json:"numberStudents" validate:"omitempty,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	activity, err := h.repository.GetActivityByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Actividad no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.EducationalProgramID != nil {
		exists, err := h.repository.ExistsEducationalProgram(*req.EducationalProgramID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !exists {
			h.notFoundResponse(w, r, "Programa educativo no encontrado")
			return
		}
		activity.EducationalProgramID = req.EducationalProgramID
	}
	if req.ActivityDistribution != nil {
		activity.ActivityDistribution = *req.ActivityDistribution
	}
	if req.ManagementType != nil {
		activity.ManagementType = *req.ManagementType
	}
	if req.StayType != nil {
		activity.StayType = *req.StayType
	}
	if req.ActivityName != nil {
		activity.ActivityName = *req.ActivityName
	}
	if req.GradeGroups != nil {
		activity.GradeGroups = *req.GradeGroups
	}
	if req.WeeklyHours != nil {
		activity.WeeklyHours = *req.WeeklyHours
	}
	if req.SubtotalClassification != nil {
		activity.SubtotalClassification = *req.SubtotalClassification
	}
	if req.NumberStudents != nil {
		activity.NumberStudents = *req.NumberStudents
	}

	if err := h.repository.UpdateActivity(activity); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "Error en la operación", "Inténtelo de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Actividad actualizada", activity)
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	activity, err := h.repository.GetActivityByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Actividad no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteActivity(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Actividad eliminada", activity)
}
