package cases_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/cases"
	"github.com/frahmantamala/crms/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockCaseRepository struct {
	cases     map[int64]*cases.CaseView
	updates   map[int64]map[string]interface{}
	lastQuery cases.Filter
	err       error
}

func newMockCaseRepository() *mockCaseRepository {
	return &mockCaseRepository{
		cases:   map[int64]*cases.CaseView{},
		updates: map[int64]map[string]interface{}{},
	}
}

func (m *mockCaseRepository) List(ctx context.Context, filter cases.Filter) ([]cases.CaseView, error) {
	m.lastQuery = filter
	if m.err != nil {
		return nil, m.err
	}
	var out []cases.CaseView
	for _, c := range m.cases {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCaseRepository) ListActive(ctx context.Context) ([]cases.ActiveCase, error) {
	return nil, m.err
}

func (m *mockCaseRepository) GetByID(ctx context.Context, id int64) (*cases.CaseView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cases[id], nil
}

func (m *mockCaseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.cases[id]
	return ok, nil
}

func (m *mockCaseRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	m.updates[id] = fields
	return nil
}

type auditCall struct {
	UserID   int64
	Action   string
	Table    string
	RecordID int64
}

type recordingAuditor struct {
	calls []auditCall
}

func (a *recordingAuditor) Record(ctx context.Context, userID int64, action, table string, recordID int64) {
	a.calls = append(a.calls, auditCall{userID, action, table, recordID})
}

var _ = Describe("Service", func() {
	var (
		repo    *mockCaseRepository
		auditor *recordingAuditor
		service *cases.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMockCaseRepository()
		repo.cases[7] = &cases.CaseView{CaseID: 7, FIRNumber: "FIR-7", Status: "Open"}
		auditor = &recordingAuditor{}
		service = cases.NewService(repo, auditor, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("List", func() {
		It("passes the filter through and never returns nil", func() {
			delete(repo.cases, 7)
			rows, err := service.List(ctx, cases.Filter{Search: "mum", Status: "Open"})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).NotTo(BeNil())
			Expect(rows).To(BeEmpty())
			Expect(repo.lastQuery.Search).To(Equal("mum"))
		})

		It("hides store errors behind a generic message", func() {
			repo.err = errors.New("boom")
			_, err := service.List(ctx, cases.Filter{})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Failed to fetch cases"))
		})
	})

	Describe("Get", func() {
		It("returns 404 for an unknown case", func() {
			_, err := service.Get(ctx, 99)
			Expect(err).To(Equal(internal.ErrCaseNotFound))
		})
	})

	Describe("Update", func() {
		It("updates status and description and records an audit entry", func() {
			err := service.Update(ctx, 3, 7, cases.UpdateCaseDTO{Status: "Closed", Description: transport.NewOptionalString("solved")})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.updates[7]).To(Equal(map[string]interface{}{"status": "Closed", "description": "solved"}))
			Expect(auditor.calls).To(ConsistOf(auditCall{3, "UPDATE", "cases", 7}))
		})

		It("clears the description on an explicit null", func() {
			err := service.Update(ctx, 3, 7, cases.UpdateCaseDTO{Description: transport.OptionalString{Set: true}})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.updates[7]).To(HaveKeyWithValue("description", BeNil()))
			Expect(repo.updates[7]).NotTo(HaveKey("status"))
		})

		It("allows reopening a closed case", func() {
			repo.cases[7].Status = "Closed"
			Expect(service.Update(ctx, 3, 7, cases.UpdateCaseDTO{Status: "Open"})).To(Succeed())
		})

		It("rejects an unknown status before touching the store", func() {
			err := service.Update(ctx, 3, 7, cases.UpdateCaseDTO{Status: "Pending"})
			appErr, _ := internal.IsAppError(err)
			Expect(appErr.StatusCode).To(Equal(400))
			Expect(appErr.Message).To(Equal("Invalid status value"))
			Expect(repo.updates).To(BeEmpty())
		})

		It("rejects an empty update and leaves the row alone", func() {
			err := service.Update(ctx, 3, 7, cases.UpdateCaseDTO{})
			Expect(err).To(Equal(internal.ErrNoFieldsToUpdate))
			Expect(repo.updates).To(BeEmpty())
			Expect(auditor.calls).To(BeEmpty())
		})

		It("is 404 for an unknown case", func() {
			err := service.Update(ctx, 3, 8, cases.UpdateCaseDTO{Status: "Closed"})
			Expect(err).To(Equal(internal.ErrCaseNotFound))
		})
	})
})
