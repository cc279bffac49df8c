package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NT                int64  `json:"ide" validate:"required,gt=0"`
		Name              string `json:"name" validate:"required"`
		Active            *bool  `json:"active"`
		Position          string `json:"position"`
		Area              string `json:"area"`
		Gender            string `json:"gender"`
		Email             string `json:"email" validate:"omitempty,email"`
		InstitutionalMail string `json:"institutionalMail" validate:"omitempty,email"`
		Degree            string `json:"degree"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := &domain.PersonalData{
		NT:                req.NT,
		Name:              req.Name,
		Active:            true,
		Position:          req.Position,
		Area:              req.Area,
		Gender:            req.Gender,
		Email:             req.Email,
		InstitutionalMail: req.InstitutionalMail,
		Degree:            req.Degree,
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23505":
			h.badRequest(w, r, errors.New("El número de trabajador ya está registrado"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Trabajador registrado con éxito", staff)
}

func (h *Handler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(staff) == 0 {
		h.successResponse(w, r, "No hay trabajadores registrados", staff)
		return
	}

	h.successResponse(w, r, "Trabajadores obtenidos con éxito", staff)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	nt, ok := h.parseIDParam(w, r, "nt")
	if !ok {
		return
	}

	staff, err := h.repository.GetStaffByNT(nt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Trabajador no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Trabajador obtenido con éxito", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	nt, ok := h.parseIDParam(w, r, "nt")
	if !ok {
		return
	}

	var req struct {
		Name              *string `json:"name"`
		Active            *bool   `json:"active"`
		Position          *string `json:"position"`
		Area              *string `json:"area"`
		Gender            *string `json:"gender"`
		Email             *string `json:"email" validate:"omitempty,email"`
		InstitutionalMail *string `json:"institutionalMail" validate:"omitempty,email"`
		Degree            *string `json:"degree"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetStaffByNT(nt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Trabajador no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Area != nil {
		staff.Area = *req.Area
	}
	if req.Gender != nil {
		staff.Gender = *req.Gender
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.InstitutionalMail != nil {
		staff.InstitutionalMail = *req.InstitutionalMail
	}
	if req.Degree != nil {
		staff.Degree = *req.Degree
	}

	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "Error en la operación", "Inténtelo de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Trabajador actualizado", staff)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	nt, ok := h.parseIDParam(w, r, "nt")
	if !ok {
		return
	}

	staff, err := h.repository.GetStaffByNT(nt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Trabajador no encontrado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteStaff(nt); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == "23503":
			h.badRequest(w, r, errors.New("El trabajador es responsable o revisor de alguna plantilla"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Trabajador eliminado", staff)
}
