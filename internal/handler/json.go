package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/utim-dev/workload-manager/backend/internal/service"
)

// Response es el sobre uniforme {message, error, data} de toda la API.
// Error es null en las respuestas de éxito.
type Response struct {
	Message string  `json:"message"`
	Error   *string `json:"error"`
	Data    any     `json:"data"`
}

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("error interno del servidor", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "Error interno del servidor", http.StatusInternalServerError)
	}
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Message: msg,
		Error:   nil,
		Data:    data,
	})
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, errLabel string, msg string) {
	h.writeJSON(w, r, status, Response{
		Message: msg,
		Error:   &errLabel,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, "Error de validación", err.Error())
		return
	}

	h.errorResponse(w, r, http.StatusBadRequest, "Error de validación", validationErrors[0].Translate(h.translator))
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.errorResponse(w, r, http.StatusNotFound, "No encontrado", msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, "Error en la operación", "Error interno del servidor")
}

// writeResult traduce el sobre del núcleo al código de estado HTTP. Las
// lecturas vacías llegan como KindOK y conservan el 200.
func writeResult[T any](h *Handler, w http.ResponseWriter, r *http.Request, res service.Result[T]) {
	status := http.StatusOK
	switch res.Kind {
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindValidation, service.KindPeriodLocked:
		status = http.StatusBadRequest
	case service.KindStore:
		status = http.StatusInternalServerError
	}

	var errLabel *string
	if res.Err != "" {
		errLabel = &res.Err
	}

	var data any
	if res.Kind == service.KindOK {
		data = res.Data
	}

	h.writeJSON(w, r, status, Response{
		Message: res.Message,
		Error:   errLabel,
		Data:    data,
	})
}
