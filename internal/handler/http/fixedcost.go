package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/fixedcost"
	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/response"
)

type FixedCostHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type FixedCostHandlerImpl struct {
	fixedCostService fixedcost.FixedCostService
}

func NewFixedCostHandler(fixedCostService fixedcost.FixedCostService) FixedCostHandler {
	return &FixedCostHandlerImpl{fixedCostService: fixedCostService}
}

// Create implements FixedCostHandler.
func (f *FixedCostHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq fixedcost.CreateFixedCostRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create fixed cost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := f.fixedCostService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create fixed cost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fixed cost created successfully", created)
}

// Update implements FixedCostHandler.
func (f *FixedCostHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq fixedcost.UpdateFixedCostRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update fixed cost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := f.fixedCostService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update fixed cost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fixed cost updated successfully", updated)
}

// List implements FixedCostHandler.
func (f *FixedCostHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	costs, err := f.fixedCostService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List fixed costs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, costs)
}

// Delete implements FixedCostHandler.
func (f *FixedCostHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := f.fixedCostService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete fixed cost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fixed cost deleted successfully", nil)
}
