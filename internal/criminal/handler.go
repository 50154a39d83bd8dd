package criminal

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Criminal, error)
	Create(ctx context.Context, actorID int64, dto CreateCriminalDTO) (int64, error)
	UpdateWanted(ctx context.Context, actorID, id int64, dto UpdateWantedDTO) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

// List handles GET /criminals
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch criminals")
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// Create handles POST /criminals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateCriminalDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	id, err := h.Service.Create(r.Context(), internal.UserIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to create criminal record")
		return
	}
	h.WriteJSON(w, http.StatusCreated, CreatedResponse{
		Message:    "Criminal record created successfully",
		CriminalID: id,
	})
}

// UpdateWanted handles PUT /criminals/{id}
func (h *Handler) UpdateWanted(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id", "Invalid criminal ID")
	if !ok {
		return
	}
	var dto UpdateWantedDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := h.Service.UpdateWanted(r.Context(), internal.UserIDFromContext(r.Context()), id, dto); err != nil {
		h.HandleServiceError(w, r, err, "Failed to update criminal wanted status")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Criminal wanted status updated successfully")
}
