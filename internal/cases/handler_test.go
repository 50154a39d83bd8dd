package cases_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/cases"
	"github.com/frahmantamala/crms/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		repo   *mockCaseRepository
		router chi.Router
	)

	BeforeEach(func() {
		repo = newMockCaseRepository()
		repo.cases[7] = &cases.CaseView{CaseID: 7, FIRNumber: "FIR-7", Status: "Open"}
		svc := cases.NewService(repo, &recordingAuditor{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		h := cases.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), svc)

		router = chi.NewRouter()
		router.Get("/cases", h.List)
		router.Get("/cases/{id}", h.Get)
		router.Put("/cases/{id}", h.Update)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req = req.WithContext(internal.ContextWithPrincipal(req.Context(), &internal.Principal{UserID: 1}))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("reads query filters", func() {
		rec := do(http.MethodGet, "/cases?search=FIR&status=Open", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(repo.lastQuery).To(Equal(cases.Filter{Search: "FIR", Status: "Open"}))
	})

	It("serializes the FIR number under its legacy name", func() {
		rec := do(http.MethodGet, "/cases/7", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"FIR_number":"FIR-7"`))
	})

	It("rejects a non-numeric id", func() {
		rec := do(http.MethodGet, "/cases/abc", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(MatchJSON(`{"error":"Invalid case ID"}`))
	})

	It("returns 404 for a missing case", func() {
		rec := do(http.MethodGet, "/cases/8", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Body.String()).To(MatchJSON(`{"error":"Case not found"}`))
	})

	It("updates a case", func() {
		rec := do(http.MethodPut, "/cases/7", `{"status":"Under Investigation"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"message":"Case updated successfully"}`))
	})

	It("rejects an empty update body", func() {
		rec := do(http.MethodPut, "/cases/7", `{}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(MatchJSON(`{"error":"No valid fields to update"}`))
	})

	It("treats a null description as a field to clear", func() {
		rec := do(http.MethodPut, "/cases/7", `{"description":null}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(`{"message":"Case updated successfully"}`))
	})

	It("rejects malformed JSON", func() {
		rec := do(http.MethodPut, "/cases/7", `{"status":`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
