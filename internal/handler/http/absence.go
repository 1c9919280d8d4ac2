package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	ListAbsences(w http.ResponseWriter, r *http.Request)
	CreateAbsence(w http.ResponseWriter, r *http.Request)
	UpdateAbsence(w http.ResponseWriter, r *http.Request)
	DeleteAbsence(w http.ResponseWriter, r *http.Request)
	ImportAbsences(w http.ResponseWriter, r *http.Request)
	GetVersion(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{
		absenceService: absenceService,
	}
}

// ListAbsences implements AbsenceHandler
func (h *absenceHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if y := query.Get("year"); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil {
			year = parsed
		}
	}
	if m := query.Get("month"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil {
			month = parsed
		}
	}

	absences, err := h.absenceService.ListAbsences(r.Context(), year, month, query.Get("matricule"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// CreateAbsence implements AbsenceHandler
func (h *absenceHandlerImpl) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.absenceService.AddAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence recorded", result)
}

// UpdateAbsence implements AbsenceHandler
func (h *absenceHandlerImpl) UpdateAbsence(w http.ResponseWriter, r *http.Request) {
	var req absence.UpdateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.absenceService.UpdateAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence updated", result)
}

// DeleteAbsence implements AbsenceHandler
func (h *absenceHandlerImpl) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	if err := h.absenceService.DeleteAbsence(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted", nil)
}

// ImportAbsences implements AbsenceHandler
func (h *absenceHandlerImpl) ImportAbsences(w http.ResponseWriter, r *http.Request) {
	var req absence.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.Rows) == 0 {
		response.BadRequest(w, "No rows to import", nil)
		return
	}

	result, err := h.absenceService.ImportFromFile(r.Context(), req.Rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import finished", result)
}

// GetVersion implements AbsenceHandler
func (h *absenceHandlerImpl) GetVersion(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.absenceService.Version())
}

// ListTypes implements AbsenceHandler
func (h *absenceHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.absenceService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// CreateType implements AbsenceHandler
func (h *absenceHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.absenceService.AddType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence type created", result)
}
