package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (h *Handler) CreateEducationalProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Abbreviation string `json:"abbreviation" validate:"required"`
		Description  string `json:"description" validate:"required"`
		AreaID       int64  `json:"areaId" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	exists, err := h.repository.ExistsArea(req.AreaID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !exists {
		h.notFoundResponse(w, r, "Área no encontrada")
		return
	}

	program := &domain.EducationalProgram{
		Abbreviation: req.Abbreviation,
		Description:  req.Description,
		AreaID:       req.AreaID,
	}

	if err := h.repository.CreateEducationalProgram(program); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Programa educativo creado con éxito", program)
}

func (h *Handler) GetAllEducationalPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.repository.GetAllEducationalPrograms()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(programs) == 0 {
		h.successResponse(w, r, "No hay programas educativos registrados", programs)
		return
	}

	h.successResponse(w, r, "Programas educativos obtenidos con éxito", programs)
}

func (h *Handler) GetEducationalProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	program, err := h.repository.GetEducationalProgramByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Programa educativo no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Programa educativo obtenido con éxito", program)
}

func (h *Handler) UpdateEducationalProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Abbreviation *string `json:"abbreviation"`
		Description  *string `json:"description"`
		AreaID       *int64  `json:"areaId" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	program, err := h.repository.GetEducationalProgramByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Programa educativo no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.AreaID != nil {
		exists, err := h.repository.ExistsArea(*req.AreaID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !exists {
			h.notFoundResponse(w, r, "Área no encontrada")
			return
		}
		program.AreaID = *req.AreaID
	}
	if req.Abbreviation != nil {
		program.Abbreviation = *req.Abbreviation
	}
	if req.Description != nil {
		program.Description = *req.Description
	}

	if err := h.repository.UpdateEducationalProgram(program); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "Error en la operación", "Inténtelo de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Programa educativo actualizado", program)
}

func (h *Handler) DeleteEducationalProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	program, err := h.repository.GetEducationalProgramByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Programa educativo no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteEducationalProgram(id); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23503":
			h.badRequest(w, r, errors.New("El programa educativo tiene materias o actividades asociadas"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Programa educativo eliminado", program)
}
