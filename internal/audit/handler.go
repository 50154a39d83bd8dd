package audit

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	ListRecent(ctx context.Context) ([]LogView, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

// List handles GET /audit-logs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.ListRecent(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch audit logs")
		return
	}
	h.WriteJSON(w, http.StatusOK, logs)
}
