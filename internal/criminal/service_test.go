package criminal_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/crms/internal"
	criminalDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/criminal"
	"github.com/frahmantamala/crms/internal/criminal"
	"github.com/frahmantamala/crms/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockCriminalRepository struct {
	rows      []criminalDatamodel.Criminal
	createErr error
	created   []*criminalDatamodel.Criminal
	linked    []int64
	wanted    map[int64]bool
}

func (m *mockCriminalRepository) List(ctx context.Context) ([]criminalDatamodel.Criminal, error) {
	return m.rows, nil
}

func (m *mockCriminalRepository) Create(ctx context.Context, c *criminalDatamodel.Criminal, linkCaseID int64) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = int64(len(m.created) + 1)
	m.created = append(m.created, c)
	if linkCaseID > 0 {
		m.linked = append(m.linked, linkCaseID)
	}
	return nil
}

func (m *mockCriminalRepository) SetWanted(ctx context.Context, id int64, wanted bool) (bool, error) {
	if _, ok := m.wanted[id]; !ok {
		return false, nil
	}
	m.wanted[id] = wanted
	return true, nil
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
		repo    *mockCriminalRepository
		auditor *recordingAuditor
		service *criminal.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &mockCriminalRepository{wanted: map[int64]bool{5: false}}
		auditor = &recordingAuditor{}
		service = criminal.NewService(repo, auditor, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Create", func() {
		It("requires name and gender", func() {
			_, err := service.Create(ctx, 1, criminal.CreateCriminalDTO{Name: "X"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Message).To(Equal("Name and gender are required"))
			Expect(repo.created).To(BeEmpty())
		})

		It("maps form fields onto columns", func() {
			height := 172.0
			id, err := service.Create(ctx, 1, criminal.CreateCriminalDTO{
				Name:                "Raghu",
				Alias:               "Rocky",
				Gender:              "Male",
				DateOfBirth:         "1990-04-12",
				Height:              &height,
				DistinguishingMarks: "scar on left cheek",
				EyeColor:            "brown",
				IsWanted:            true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(1)))

			m := repo.created[0]
			Expect(*m.Alias).To(Equal("Rocky"))
			Expect(*m.IdentifyingMarks).To(Equal("scar on left cheek"))
			Expect(*m.HeightCM).To(Equal(172.0))
			Expect(m.WeightKG).To(BeNil())
			Expect(m.DOB.Equal(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))).To(BeTrue())
			Expect(m.IsWanted).To(BeTrue())
			Expect(auditor.calls).To(ConsistOf(auditCall{1, "CREATE", "criminals", 1}))
		})

		It("audits the link before the create", func() {
			_, err := service.Create(ctx, 2, criminal.CreateCriminalDTO{Name: "A", Gender: "Female", LinkedCaseID: transport.NewFlexibleID(9)})
			Expect(err).NotTo(HaveOccurred())
			Expect(auditor.calls).To(Equal([]auditCall{
				{2, "LINK", "cases", 9},
				{2, "CREATE", "criminals", 1},
			}))
		})

		DescribeTable("link failures",
			func(repoErr error, message string) {
				repo.createErr = repoErr
				_, err := service.Create(ctx, 1, criminal.CreateCriminalDTO{Name: "A", Gender: "M", LinkedCaseID: transport.NewFlexibleID(3)})
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
				Expect(appErr.Message).To(Equal(message))
				Expect(auditor.calls).To(BeEmpty())
			},
			Entry("missing case", criminal.ErrLinkedCaseMissing, "Linked case not found"),
			Entry("already linked", criminal.ErrCaseAlreadyLinked, "Case already has a primary accused"),
		)

		It("rejects a linked case id that can never exist", func() {
			_, err := service.Create(ctx, 1, criminal.CreateCriminalDTO{Name: "A", Gender: "M", LinkedCaseID: transport.NewFlexibleID(-5)})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
			Expect(appErr.Message).To(Equal("Linked case not found"))
			Expect(repo.created).To(BeEmpty())
			Expect(repo.linked).To(BeEmpty())
			Expect(auditor.calls).To(BeEmpty())
		})

		It("reports other store errors as 500", func() {
			repo.createErr = errors.New("disk full")
			_, err := service.Create(ctx, 1, criminal.CreateCriminalDTO{Name: "A", Gender: "M"})
			appErr, _ := internal.IsAppError(err)
			Expect(appErr.StatusCode).To(Equal(500))
		})
	})

	Describe("UpdateWanted", func() {
		It("flips the flag and audits", func() {
			Expect(service.UpdateWanted(ctx, 1, 5, criminal.UpdateWantedDTO{IsWanted: true, WantedReason: "absconding"})).To(Succeed())
			Expect(repo.wanted[5]).To(BeTrue())
			Expect(auditor.calls).To(ConsistOf(auditCall{1, "UPDATE", "criminals", 5}))
		})

		It("is 404 for an unknown criminal", func() {
			err := service.UpdateWanted(ctx, 1, 6, criminal.UpdateWantedDTO{})
			Expect(err).To(Equal(internal.ErrCriminalNotFound))
		})
	})

	Describe("Handler", func() {
		var router chi.Router

		BeforeEach(func() {
			h := criminal.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), service)
			router = chi.NewRouter()
			router.Post("/criminals", h.Create)
			router.Put("/criminals/{id}", h.UpdateWanted)
		})

		It("returns 201 with the new id", func() {
			req := httptest.NewRequest(http.MethodPost, "/criminals", strings.NewReader(`{"name":"A","gender":"Male"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).To(MatchJSON(`{"message":"Criminal record created successfully","criminal_id":1}`))
		})

		It("accepts the linked case id as a string", func() {
			body := `{"name":"A","gender":"Male","linked_case_id":"5"}`
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/criminals", strings.NewReader(body)))
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(repo.linked).To(Equal([]int64{5}))
			Expect(auditor.calls[0]).To(Equal(auditCall{0, "LINK", "cases", 5}))
		})

		It("answers 400 for a negative linked case id", func() {
			body := `{"name":"A","gender":"Male","linked_case_id":-5}`
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/criminals", strings.NewReader(body)))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Linked case not found"}`))
			Expect(repo.created).To(BeEmpty())
		})

		It("rejects a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodPut, "/criminals/x", strings.NewReader(`{"is_wanted":true}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Invalid criminal ID"}`))
		})
	})
})
