package report_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/cases"
	"github.com/frahmantamala/crms/internal/report"
	"github.com/frahmantamala/crms/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

type stubLister struct {
	rows       []cases.CaseView
	err        error
	lastFilter cases.Filter
}

func (s *stubLister) List(ctx context.Context, filter cases.Filter) ([]cases.CaseView, error) {
	s.lastFilter = filter
	return s.rows, s.err
}

type auditCall struct {
	userID   int64
	action   string
	table    string
	recordID int64
}

type recordingAuditor struct {
	calls []auditCall
}

func (a *recordingAuditor) Record(ctx context.Context, userID int64, action, table string, recordID int64) {
	a.calls = append(a.calls, auditCall{userID, action, table, recordID})
}

func strPtr(s string) *string { return &s }

var sampleCases = []cases.CaseView{
	{
		CaseID:             7,
		FIRNumber:          "FIR-2024-007",
		Status:             "Open",
		City:               strPtr("Pune"),
		CrimeName:          strPtr("Theft"),
		IPCSection:         strPtr("379"),
		PrimaryAccusedName: strPtr("R. Shah"),
		DateReported:       time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
	},
	{
		CaseID:       3,
		FIRNumber:    "FIR-2024-003",
		Status:       "Closed",
		DateReported: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
}

var _ = Describe("BuildCaseWorkbook", func() {
	It("writes a header row and one row per case", func() {
		data, err := report.BuildCaseWorkbook(sampleCases)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		Expect(f.GetSheetList()).To(Equal([]string{report.CaseSheet}))

		rows, err := f.GetRows(report.CaseSheet)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal(report.CaseHeader))
		Expect(rows[1][0]).To(Equal("7"))
		Expect(rows[1][1]).To(Equal("FIR-2024-007"))
		Expect(rows[1][2]).To(Equal("Theft"))
		Expect(rows[1][9]).To(Equal("R. Shah"))
		Expect(rows[1][10]).To(Equal("2024-03-02 09:30"))
		Expect(rows[2][1]).To(Equal("FIR-2024-003"))
		Expect(rows[2][5]).To(Equal("Closed"))
	})

	It("produces a header-only sheet for no cases", func() {
		data, err := report.BuildCaseWorkbook(nil)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows(report.CaseSheet)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
	})
})

var _ = Describe("Handler", func() {
	var (
		lister  *stubLister
		auditor *recordingAuditor
		handler *report.Handler
	)

	BeforeEach(func() {
		lister = &stubLister{rows: sampleCases}
		auditor = &recordingAuditor{}
		discard := slog.New(slog.NewTextHandler(io.Discard, nil))
		handler = report.NewHandler(transport.NewBaseHandler(discard), report.NewService(lister, auditor, discard))
		handler.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	})

	exportAs := func(userID int64, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req = req.WithContext(internal.ContextWithPrincipal(req.Context(), &internal.Principal{UserID: userID}))
		rec := httptest.NewRecorder()
		handler.ExportCases(rec, req)
		return rec
	}

	It("streams the workbook as an attachment and audits the export", func() {
		rec := exportAs(4, "/reports/cases?status=Open&search=fir")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal(report.ContentTypeXLSX))
		Expect(rec.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="cases-20240501-120000.xlsx"`))
		Expect(rec.Header().Get("X-Row-Count")).To(Equal("2"))
		Expect(lister.lastFilter).To(Equal(cases.Filter{Search: "fir", Status: "Open"}))

		_, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		Expect(err).NotTo(HaveOccurred())

		Expect(auditor.calls).To(Equal([]auditCall{{4, "EXPORT", "cases", 0}}))
	})

	It("passes through the listing error and skips the audit", func() {
		lister.err = internal.NewInternalError("Failed to fetch cases", errors.New("db down"))

		rec := exportAs(4, "/reports/cases")

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).To(MatchJSON(`{"error":"Failed to generate report"}`))
		Expect(auditor.calls).To(BeEmpty())
	})
})
