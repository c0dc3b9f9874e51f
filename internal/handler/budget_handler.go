package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/starke/backend/internal/model"
	"github.com/starke/backend/internal/pagination"
	"github.com/starke/backend/internal/service"
	"github.com/starke/backend/internal/validate"
)

// BudgetHandler handles quote request submission and the admin listing.
type BudgetHandler struct {
	budgetService service.BudgetService
}

// NewBudgetHandler creates a BudgetHandler with the given service.
func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// budgetSubmitRequest is the expected JSON body for POST /api/budgets.
// company is optional.
type budgetSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Details string `json:"details"`
	Company string `json:"company"`
	City    string `json:"city"`
}

// Submit handles POST /api/budgets.
func (h *BudgetHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req budgetSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	b := &model.Budget{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Details: req.Details,
		Company: req.Company,
		City:    req.City,
	}
	if err := h.budgetService.Submit(r.Context(), b); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "Missing fields: "+strings.Join(verr.Missing, ", "))
			return
		}
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// List handles GET /api/budgets behind the token gate.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := pagination.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("page_size"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	items, total, err := h.budgetService.List(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	if items == nil {
		items = []*model.Budget{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
}
