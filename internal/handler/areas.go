package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (h *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	area := &domain.Area{Name: req.Name}

	if err := h.repository.CreateArea(area); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23505":
			h.badRequest(w, r, errors.New("El área ya existe"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Área creada con éxito", area)
}

func (h *Handler) GetAllAreas(w http.ResponseWriter, r *http.Request) {
	// ?name= filtra por coincidencia parcial sin distinguir mayúsculas
	name := r.URL.Query().Get("name")

	if name != "" {
		areas, err := h.repository.SearchAreasByName(name)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if len(areas) == 0 {
			h.successResponse(w, r, "No se encontraron áreas con ese nombre", areas)
			return
		}
		h.successResponse(w, r, "Áreas encontradas", areas)
		return
	}

	areas, err := h.repository.GetAllAreas()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(areas) == 0 {
		h.successResponse(w, r, "No hay áreas registradas", areas)
		return
	}

	h.successResponse(w, r, "Áreas obtenidas con éxito", areas)
}

func (h *Handler) GetAreasWithPrograms(w http.ResponseWriter, r *http.Request) {
	areas, err := h.repository.GetAllAreasWithPrograms()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(areas) == 0 {
		h.successResponse(w, r, "No hay áreas registradas", areas)
		return
	}

	h.successResponse(w, r, "Áreas obtenidas con éxito", areas)
}

func (h *Handler) GetArea(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	area, err := h.repository.GetAreaByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Área no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Área obtenida con éxito", area)
}

func (h *Handler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	area, err := h.repository.GetAreaByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Área no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	area.Name = req.Name

	if err := h.repository.UpdateArea(area); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23505":
			h.badRequest(w, r, errors.New("El área ya existe"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "Error en la operación", "Inténtelo de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Área actualizada", area)
}

func (h *Handler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	area, err := h.repository.GetAreaByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Área no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteArea(id); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23503":
			h.badRequest(w, r, errors.New("El área tiene programas o plantillas asociadas"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Área eliminada", area)
}
