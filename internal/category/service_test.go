package category_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/crms/internal/category"
	categoryDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/crimecategory"
	"github.com/frahmantamala/crms/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockCategoryRepository struct {
	categories []*categoryDatamodel.CrimeCategory
	err        error
}

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*categoryDatamodel.CrimeCategory, error) {
	return m.categories, m.err
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*categoryDatamodel.CrimeCategory, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

var _ = Describe("Category", func() {
	var (
		repo    *mockCategoryRepository
		service *category.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &mockCategoryRepository{categories: []*categoryDatamodel.CrimeCategory{
			{ID: 2, CrimeName: "Murder", IPCSection: "IPC 302", SeverityLevel: "High"},
			{ID: 1, CrimeName: "Theft", IPCSection: "IPC 379", SeverityLevel: "Medium"},
		}}
		service = category.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	It("maps rows to the API shape", func() {
		cats, err := service.GetAllCategories(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(cats).To(Equal([]category.Category{
			{CrimeTypeID: 2, CrimeName: "Murder", IPCSection: "IPC 302", SeverityLevel: "High"},
			{CrimeTypeID: 1, CrimeName: "Theft", IPCSection: "IPC 379", SeverityLevel: "Medium"},
		}))
	})

	It("round-trips through the data model", func() {
		c := category.Category{CrimeTypeID: 5, CrimeName: "Arson"}
		Expect(category.FromDataModel(category.ToDataModel(c))).To(Equal(c))
	})

	It("checks existence", func() {
		Expect(service.Exists(ctx, 1)).To(BeTrue())
		Expect(service.Exists(ctx, 3)).To(BeFalse())
	})

	Describe("Handler", func() {
		It("writes a bare JSON array", func() {
			h := category.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), service)
			rec := httptest.NewRecorder()
			h.GetCategories(rec, httptest.NewRequest(http.MethodGet, "/crime-categories", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(HavePrefix("["))
		})

		It("hides store errors", func() {
			repo.err = errors.New("timeout")
			h := category.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), service)
			rec := httptest.NewRecorder()
			h.GetCategories(rec, httptest.NewRequest(http.MethodGet, "/crime-categories", nil))
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Failed to fetch crime categories"}`))
		})
	})
})
