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

// MessageHandler handles public message submission and the admin listing.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// messageSubmitRequest is the expected JSON body for POST /api/messages.
type messageSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/messages. All four fields are required; the 400
// response names every missing one.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req messageSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	msg := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.messageService.Submit(r.Context(), msg); err != nil {
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

// List handles GET /api/messages. The token gate runs in front of it as
// middleware, so the request is already authenticated here.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	p, err := pagination.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("page_size"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	items, total, err := h.messageService.List(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty pages
	if items == nil {
		items = []*model.Message{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
}
