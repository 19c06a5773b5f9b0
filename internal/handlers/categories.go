package handlers

import (
	"ContactHub/internal/query"
	"ContactHub/internal/records"
	"ContactHub/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// CategoryHandler обслуживает общую коллекцию categories.
type CategoryHandler struct {
	CategoryService *service.CategoryService
	Logger          *zap.SugaredLogger
}

func NewCategoryHandler(s *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{CategoryService: s, Logger: logger}
}

func (h *CategoryHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var q query.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeJSON(w, http.StatusBadRequest, records.FetchResponse[records.Category]{Message: "invalid request body", Data: []records.Category{}})
		return
	}
	list, err := h.CategoryService.Fetch(r.Context(), q)
	switch {
	case errors.Is(err, query.ErrInvalidQuery):
		writeJSON(w, http.StatusBadRequest, records.FetchResponse[records.Category]{Message: err.Error(), Data: []records.Category{}})
		return
	case err != nil:
		h.Logger.Errorw("Fetch categories: service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, records.FetchResponse[records.Category]{Message: "internal error", Data: []records.Category{}})
		return
	}
	writeJSON(w, http.StatusOK, records.FetchResponse[records.Category]{Success: true, Data: list, Total: len(list)})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, records.GetResponse[records.Category]{Message: "invalid id"})
		return
	}
	c, err := h.CategoryService.Get(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, records.GetResponse[records.Category]{Message: "record not found"})
	case err != nil:
		h.Logger.Errorw("Get category: service error", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, records.GetResponse[records.Category]{Message: "internal error"})
	default:
		writeJSON(w, http.StatusOK, records.GetResponse[records.Category]{Success: true, Data: c})
	}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req records.MutationRequest[records.CategoryFields]
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Records) == 0 {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "records are required"})
		return
	}
	res := h.CategoryService.Create(r.Context(), req.Records)
	writeJSON(w, http.StatusOK, records.MutationResponse[records.Category]{Success: true, Results: res})
}
