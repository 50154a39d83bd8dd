package fir

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	Register(ctx context.Context, actorID int64, dto RegisterFIRDTO) (int64, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

// Register handles POST /fir
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterFIRDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	caseID, err := h.Service.Register(r.Context(), internal.UserIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to register FIR")
		return
	}
	h.WriteJSON(w, http.StatusCreated, RegisteredResponse{Message: "FIR registered successfully", CaseID: caseID})
}
