package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/auth"
	"github.com/frahmantamala/crms/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubRoles struct {
	roles map[int64]string
	err   error
}

func (s stubRoles) RoleName(ctx context.Context, userID int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name, ok := s.roles[userID]
	if !ok {
		return "", internal.ErrPrincipalNotFound
	}
	return name, nil
}

var _ = Describe("RBACAuthorization", func() {
	var (
		roles   stubRoles
		rbac    *auth.RBACAuthorization
		reached bool
		next    http.Handler
	)

	BeforeEach(func() {
		roles = stubRoles{roles: map[int64]string{
			1: auth.RoleAdmin,
			2: auth.RoleSuperintendent,
			3: auth.RoleCID,
			4: auth.RoleNCO,
		}}
		reached = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusNoContent)
		})
	})

	serve := func(gate func(http.Handler) http.Handler, userID int64) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if userID > 0 {
			req = req.WithContext(internal.ContextWithPrincipal(req.Context(), &internal.Principal{UserID: userID}))
		}
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, req)
		return rec
	}

	JustBeforeEach(func() {
		base := transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
		rbac = auth.NewRBACAuthorization(base, roles, auth.MustLoadPermissionTable())
	})

	Describe("RequirePermission", func() {
		It("passes a role holding the permission", func() {
			rec := serve(rbac.RequirePermission(auth.PermCreateFIR), 4)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(reached).To(BeTrue())
		})

		It("passes Admin through the wildcard", func() {
			rec := serve(rbac.RequirePermission(auth.PermViewAuditLogs), 1)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("names the role and permission when denying", func() {
			rec := serve(rbac.RequirePermission(auth.PermEditCase), 4)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Access denied. NCO role does not have permission: edit_case"}`))
			Expect(reached).To(BeFalse())
		})

		It("is 403 User not found for a deleted user", func() {
			rec := serve(rbac.RequirePermission(auth.PermViewCases), 77)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"User not found"}`))
		})

		It("is 401 without a principal", func() {
			rec := serve(rbac.RequirePermission(auth.PermViewCases), 0)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		Context("when the store fails", func() {
			BeforeEach(func() {
				roles.err = errors.New("db down")
			})

			It("is 500 Permission check error", func() {
				rec := serve(rbac.RequirePermission(auth.PermViewCases), 1)
				Expect(rec.Code).To(Equal(http.StatusInternalServerError))
				Expect(rec.Body.String()).To(MatchJSON(`{"error":"Permission check error"}`))
			})
		})
	})

	Describe("RequireRoles", func() {
		It("passes a listed role", func() {
			rec := serve(rbac.RequireRoles(auth.RoleAdmin, auth.RoleSuperintendent), 2)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("denies other roles with the generic message", func() {
			rec := serve(rbac.RequireRoles(auth.RoleAdmin, auth.RoleSuperintendent), 3)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(rec.Body.String()).To(MatchJSON(`{"error":"Access denied. Insufficient permissions."}`))
		})

		It("denies a missing user the same way", func() {
			rec := serve(rbac.RequireRoles(auth.RoleAdmin), 99)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		Context("when the store fails", func() {
			BeforeEach(func() {
				roles.err = errors.New("db down")
			})

			It("is 500 Authorization error", func() {
				rec := serve(rbac.RequireRoles(auth.RoleAdmin), 1)
				Expect(rec.Code).To(Equal(http.StatusInternalServerError))
				Expect(rec.Body.String()).To(MatchJSON(`{"error":"Authorization error"}`))
			})
		})
	})
})
