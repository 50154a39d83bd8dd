package cases

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, filter Filter) ([]CaseView, error)
	ListActive(ctx context.Context) ([]ActiveCase, error)
	Get(ctx context.Context, id int64) (*CaseView, error)
	Update(ctx context.Context, actorID, id int64, dto UpdateCaseDTO) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

// List handles GET /cases?search=&status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, err := h.Service.List(r.Context(), Filter{
		Search: q.Get("search"),
		Status: q.Get("status"),
	})
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch cases")
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// ListActive handles GET /cases/active
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.ListActive(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch active cases")
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// Get handles GET /cases/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id", "Invalid case ID")
	if !ok {
		return
	}
	c, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch case")
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

// Update handles PUT /cases/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id", "Invalid case ID")
	if !ok {
		return
	}
	var dto UpdateCaseDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := h.Service.Update(r.Context(), internal.UserIDFromContext(r.Context()), id, dto); err != nil {
		h.HandleServiceError(w, r, err, "Failed to update case")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Case updated successfully")
}
