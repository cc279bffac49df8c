package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Comment           string `json:"comment" validate:"required"`
		PartialTemplateID int64  `json:"partialTemplateId" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	pt, err := h.repository.GetPartialTemplateByID(req.PartialTemplateID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Plantilla parcial no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	comment := &domain.Comment{
		Comment:           req.Comment,
		PartialTemplateID: req.PartialTemplateID,
	}

	if err := h.repository.CreateComment(comment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// La notificación al trabajador es un mejor esfuerzo: si el correo
	// no se puede encolar la observación ya quedó registrada.
	h.notifyCorrection(pt, comment)

	h.successResponse(w, r, "Observación registrada con éxito", comment)
}

func (h *Handler) notifyCorrection(pt *domain.PartialTemplate, comment *domain.Comment) {
	staff, err := h.repository.GetStaffByNT(pt.NT)
	if err != nil || staff.Email == "" {
		slog.Warn("no se pudo notificar la observación", "nt", pt.NT, "error", err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "correction",
		To:   staff.Email,
		Data: domain.CorrectionMailData{
			FullName: staff.Name,
			Period:   pt.Period,
			Comment:  comment.Comment,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("no se pudo serializar la notificación", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("no se pudo encolar la notificación", "error", err)
	}
}

func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	comment, err := h.repository.GetCommentByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Observación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Observación obtenida con éxito", comment)
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Comment string `json:"comment" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	comment, err := h.repository.GetCommentByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Observación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	comment.Comment = req.Comment

	if err := h.repository.UpdateComment(comment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Observación actualizada", comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	comment, err := h.repository.GetCommentByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFoundResponse(w, r, "Observación no encontrada")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteComment(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Observación eliminada", comment)
}
