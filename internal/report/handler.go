package report

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/cases"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	ExportCases(ctx context.Context, actorID int64, filter cases.Filter) ([]byte, int, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Now     func() time.Time
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service, Now: time.Now}
}

// ExportCases handles GET /reports/cases
func (h *Handler) ExportCases(w http.ResponseWriter, r *http.Request) {
	filter := cases.Filter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}

	workbook, rows, err := h.Service.ExportCases(r.Context(), internal.UserIDFromContext(r.Context()), filter)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to generate report")
		return
	}

	filename := fmt.Sprintf("cases-%s.xlsx", h.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(workbook)))
	w.Header().Set("X-Row-Count", strconv.Itoa(rows))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to write report", "error", err)
	}
}
