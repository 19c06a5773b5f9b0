package handlers

import (
	"ContactHub/internal/middleware"
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"ContactHub/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContactHandler обслуживает коллекцию contacts текущего пользователя.
type ContactHandler struct {
	ContactService *service.ContactService
	Logger         *zap.SugaredLogger
}

func NewContactHandler(s *service.ContactService, logger *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{ContactService: s, Logger: logger}
}

func userID(r *http.Request) int64 {
	id, _ := middleware.GetUserIDFromContext(r.Context())
	return id
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Fetch выборка контактов по запросу.
func (h *ContactHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var q query.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeJSON(w, http.StatusBadRequest, records.FetchResponse[records.Contact]{Message: "invalid request body", Data: []records.Contact{}})
		return
	}
	list, err := h.ContactService.Fetch(r.Context(), userID(r), q)
	switch {
	case errors.Is(err, query.ErrInvalidQuery):
		writeJSON(w, http.StatusBadRequest, records.FetchResponse[records.Contact]{Message: err.Error(), Data: []records.Contact{}})
		return
	case err != nil:
		h.Logger.Errorw("Fetch contacts: service error", "user_id", userID(r), "error", err)
		writeJSON(w, http.StatusInternalServerError, records.FetchResponse[records.Contact]{Message: "internal error", Data: []records.Contact{}})
		return
	}
	writeJSON(w, http.StatusOK, records.FetchResponse[records.Contact]{Success: true, Data: list, Total: len(list)})
}

// Get чтение контакта по id.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, records.GetResponse[records.Contact]{Message: "invalid id"})
		return
	}
	c, err := h.ContactService.Get(r.Context(), userID(r), id)
	h.writeOne(w, r, c, err)
}

// ToggleFavorite инверсия флага избранного.
func (h *ContactHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, records.GetResponse[records.Contact]{Message: "invalid id"})
		return
	}
	c, err := h.ContactService.ToggleFavorite(r.Context(), userID(r), id)
	h.writeOne(w, r, c, err)
}

func (h *ContactHandler) writeOne(w http.ResponseWriter, r *http.Request, c *records.Contact, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, records.GetResponse[records.Contact]{Message: "record not found"})
	case err != nil:
		h.Logger.Errorw("contact request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, records.GetResponse[records.Contact]{Message: "internal error"})
	default:
		writeJSON(w, http.StatusOK, records.GetResponse[records.Contact]{Success: true, Data: c})
	}
}

// Create пакетное создание.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req records.MutationRequest[records.ContactFields]
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Records) == 0 {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "records are required"})
		return
	}
	res := h.ContactService.Create(r.Context(), userID(r), req.Records)
	writeJSON(w, http.StatusOK, records.MutationResponse[records.Contact]{Success: true, Results: res})
}

// Update пакетное обновление частичными записями.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req records.MutationRequest[records.ContactFields]
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Records) == 0 {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "records are required"})
		return
	}
	res := h.ContactService.Update(r.Context(), userID(r), req.Records)
	writeJSON(w, http.StatusOK, records.MutationResponse[records.Contact]{Success: true, Results: res})
}

// Delete пакетное удаление по идентификаторам.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req records.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.RecordIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "RecordIds are required"})
		return
	}
	res := h.ContactService.Delete(r.Context(), userID(r), req.RecordIDs)
	writeJSON(w, http.StatusOK, records.MutationResponse[records.Deleted]{Success: true, Results: res})
}
