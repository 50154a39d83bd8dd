package investigation

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]View, error)
	Create(ctx context.Context, actorID int64, dto CreateInvestigationDTO) (int64, error)
	Update(ctx context.Context, actorID, id int64, dto UpdateInvestigationDTO) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch investigations")
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateInvestigationDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	id, err := h.Service.Create(r.Context(), internal.UserIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to create investigation")
		return
	}
	h.WriteJSON(w, http.StatusCreated, CreatedResponse{
		Message:         "Investigation created successfully",
		InvestigationID: id,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id", "Invalid investigation ID")
	if !ok {
		return
	}
	var dto UpdateInvestigationDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := h.Service.Update(r.Context(), internal.UserIDFromContext(r.Context()), id, dto); err != nil {
		h.HandleServiceError(w, r, err, "Failed to update investigation")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Investigation updated successfully")
}
