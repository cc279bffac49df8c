package handler

import (
	"net/http"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"github.com/utim-dev/workload-manager/backend/internal/service"
)

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		State         string `json:"state" validate:"omitempty,oneof=pendiente aprobado corrección"`
		AreaID        int64  `json:"areaId" validate:"required,gt=0"`
		Period        string `json:"period" validate:"required"`
		ResponsibleID int64  `json:"responsibleId" validate:"required,gt=0"`
		RevisedByID   int64  `json:"revisedById" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	template := &domain.Template{
		State:         req.State,
		AreaID:        req.AreaID,
		Period:        req.Period,
		ResponsibleID: req.ResponsibleID,
		RevisedByID:   req.RevisedByID,
	}

	writeResult(h, w, r, h.templates.Create(template))
}

func (h *Handler) GetAllTemplates(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, h.templates.FindAll())
}

func (h *Handler) GetAllTemplatesWithPartials(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, h.templates.FindAllWithPartials())
}

func (h *Handler) GetTemplatesByArea(w http.ResponseWriter, r *http.Request) {
	areaID, ok := h.parseIDParam(w, r, "areaId")
	if !ok {
		return
	}

	writeResult(h, w, r, h.templates.FindByArea(areaID))
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.templates.FindOne(id))
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		State         *string `json:"state" validate:"omitempty,oneof=pendiente aprobado corrección"`
		AreaID        *int64  `json:"areaId" validate:"omitempty,gt=0"`
		Period        *string `json:"period"`
		ResponsibleID *int64  `json:"responsibleId" validate:"omitempty,gt=0"`
		RevisedByID   *int64  `json:"revisedById" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := service.TemplatePatch{
		State:         req.State,
		AreaID:        req.AreaID,
		Period:        req.Period,
		ResponsibleID: req.ResponsibleID,
		RevisedByID:   req.RevisedByID,
	}

	writeResult(h, w, r, h.templates.Update(id, patch))
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.templates.Delete(id))
}
