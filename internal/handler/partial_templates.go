package handler

import (
	"net/http"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"github.com/utim-dev/workload-manager/backend/internal/service"
)

type activityRequest struct {
	EducationalProgramID   *int64   `json:"educationalProgramId" validate:"omitempty,gt=0"`
	ActivityDistribution   string   `json:"activityDistribution" validate:"required"`
	ManagementType         string   `json:"managementType"`
	StayType               string   `json:"stayType"`
	ActivityName           string   `json:"activityName"`
	GradeGroups            []string `json:"gradeGroups"`
	WeeklyHours            int32    `json:"weeklyHours" validate:"gte=0"`
	SubtotalClassification int32    `json:"subtotalClassification" validate:"gte=0"`
	NumberStudents         int32    `json:"numberStudents" validate:"gte=0"`
}

func (req *activityRequest) toDomain() *domain.Activity {
	return &domain.Activity{
		EducationalProgramID:   req.EducationalProgramID,
		ActivityDistribution:   req.ActivityDistribution,
		ManagementType:         req.ManagementType,
		StayType:               req.StayType,
		ActivityName:           req.ActivityName,
		GradeGroups:            req.GradeGroups,
		WeeklyHours:            req.WeeklyHours,
		SubtotalClassification: req.SubtotalClassification,
		NumberStudents:         req.NumberStudents,
	}
}

// partialTemplateItem son los campos propios de una plantilla parcial,
// sin la plantilla padre. El alta por lote lo usa tal cual: ahí el
// templateId viene una sola vez para todo el lote.
type partialTemplateItem struct {
	NT       int64  `json:"nt" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required"`
	Gender   string `json:"gender"`
	Position string `json:"position" validate:"required"`
	Total    int32  `json:"total" validate:"gte=0"`
	Status   string `json:"status" validate:"omitempty,oneof=pendiente aprobado corrección"`
	Year     string `json:"year" validate:"required"`
	Period   string `json:"period" validate:"required"`
}

func (item *partialTemplateItem) toDomain() *domain.PartialTemplate {
	return &domain.PartialTemplate{
		NT:       item.NT,
		Name:     item.Name,
		Gender:   item.Gender,
		Position: item.Position,
		Total:    item.Total,
		Status:   item.Status,
		Year:     item.Year,
		Period:   item.Period,
	}
}

type partialTemplateRequest struct {
	partialTemplateItem
	TemplateID int64 `json:"templateId" validate:"required,gt=0"`
}

func (req *partialTemplateRequest) toDomain() *domain.PartialTemplate {
	pt := req.partialTemplateItem.toDomain()
	pt.TemplateID = req.TemplateID
	return pt
}

func (h *Handler) CreatePartialTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		partialTemplateRequest
		Activities []activityRequest `json:"activities" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pt := req.toDomain()

	if len(req.Activities) == 0 {
		writeResult(h, w, r, h.partials.Create(pt))
		return
	}

	activities := make([]*domain.Activity, len(req.Activities))
	for i := range req.Activities {
		activities[i] = req.Activities[i].toDomain()
	}

	writeResult(h, w, r, h.partials.CreateWithActivities(pt, activities))
}

func (h *Handler) CreateManyPartialTemplates(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID       int64                 `json:"templateId" validate:"required,gt=0"`
		PartialTemplates []partialTemplateItem `json:"partialTemplates" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pts := make([]*domain.PartialTemplate, len(req.PartialTemplates))
	for i := range req.PartialTemplates {
		pts[i] = req.PartialTemplates[i].toDomain()
	}

	writeResult(h, w, r, h.partials.CreateMany(req.TemplateID, pts))
}

func (h *Handler) GetAllPartialTemplates(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, h.partials.FindAll(r.URL.Query().Get("status")))
}

func (h *Handler) GetAllPartialTemplatesWithActivities(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, h.partials.FindAllWithActivities(r.URL.Query().Get("status")))
}

func (h *Handler) GetAllPartialTemplatesWithComments(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, h.partials.FindAllWithComments(r.URL.Query().Get("status")))
}

func (h *Handler) GetPartialTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.partials.FindOne(id))
}

func (h *Handler) GetPartialTemplateActivities(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.partials.FindOneWithActivities(id))
}

func (h *Handler) GetPartialTemplateComments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.partials.FindOneWithComments(id))
}

func (h *Handler) UpdatePartialTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		NT         *int64  `json:"nt" validate:"omitempty,gt=0"`
		Name       *string `json:"name"`
		Gender     *string `json:"gender"`
		Position   *string `json:"position"`
		Total      *int32  `json:"total" validate:"omitempty,gte=0"`
		Status     *string `json:"status" validate:"omitempty,oneof=pendiente aprobado corrección"`
		Year       *string `json:"year"`
		Period     *string `json:"period"`
		TemplateID *int64  `json:"templateId" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := service.PartialTemplatePatch{
		NT:         req.NT,
		Name:       req.Name,
		Gender:     req.Gender,
		Position:   req.Position,
		Total:      req.Total,
		Status:     req.Status,
		Year:       req.Year,
		Period:     req.Period,
		TemplateID: req.TemplateID,
	}

	writeResult(h, w, r, h.partials.Update(id, patch))
}

func (h *Handler) DeletePartialTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	writeResult(h, w, r, h.partials.Delete(id))
}
