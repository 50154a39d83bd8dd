package category

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	GetAllCategories(ctx context.Context) ([]Category, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// GetCategories handles GET /crime-categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetAllCategories(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch crime categories")
		return
	}
	h.WriteJSON(w, http.StatusOK, categories)
}
