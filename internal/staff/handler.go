package staff

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Staff, error)
	Create(ctx context.Context, actorID int64, dto CreateStaffDTO) (int64, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

// List handles GET /staff
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch staff")
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// Create handles POST /staff
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateStaffDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	id, err := h.Service.Create(r.Context(), internal.UserIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to create police staff")
		return
	}
	h.WriteJSON(w, http.StatusCreated, CreatedResponse{Message: "Police staff created successfully", StaffID: id})
}
