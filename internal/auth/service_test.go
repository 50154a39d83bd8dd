package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

type mockRepository struct {
	creds       map[string]*auth.Credentials
	roles       map[int64]string
	findErr     error
	touched     []int64
	touchErr    error
	roleLookErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		creds: map[string]*auth.Credentials{},
		roles: map[int64]string{},
	}
}

func (m *mockRepository) add(id int64, username, password, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	m.creds[username] = &auth.Credentials{
		Profile: auth.Profile{
			UserID:    id,
			Username:  username,
			RoleName:  role,
			RoleID:    id,
			StaffName: "Officer " + username,
		},
		PasswordHash: string(hash),
	}
	m.roles[id] = role
}

func (m *mockRepository) FindActiveByUsername(ctx context.Context, username string) (*auth.Credentials, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.creds[username], nil
}

func (m *mockRepository) GetProfile(ctx context.Context, userID int64) (*auth.Profile, error) {
	for _, c := range m.creds {
		if c.UserID == userID {
			p := c.Profile
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) RoleNameForUser(ctx context.Context, userID int64) (string, bool, error) {
	if m.roleLookErr != nil {
		return "", false, m.roleLookErr
	}
	name, ok := m.roles[userID]
	return name, ok, nil
}

func (m *mockRepository) TouchLastLogin(ctx context.Context, userID int64, at time.Time) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	m.touched = append(m.touched, userID)
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

type failingRevocationStore struct{}

func (failingRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return errors.New("redis down")
}

func (failingRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, errors.New("redis down")
}

var _ = Describe("Service", func() {
	var (
		repo    *mockRepository
		tokens  *auth.JWTTokenGenerator
		auditor *recordingAuditor
		mr      *miniredis.Miniredis
		service *auth.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMockRepository()
		repo.add(1, "admin", "admin123", auth.RoleAdmin)
		repo.add(4, "nco1", "nco123", auth.RoleNCO)
		tokens = auth.NewJWTTokenGenerator(testSecret, 8*time.Hour)
		auditor = &recordingAuditor{}

		mr = miniredis.RunT(GinkgoT())
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)

		service = auth.NewService(repo, tokens, auth.NewRedisRevocationStore(client), auditor,
			auth.MustLoadPermissionTable(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Login", func() {
		It("issues a token carrying the user's identity and records the login", func() {
			resp, err := service.Login(ctx, auth.LoginDTO{Username: "nco1", Password: "nco123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.User.RoleName).To(Equal(auth.RoleNCO))
			Expect(resp.User.StaffName).To(Equal("Officer nco1"))

			claims, err := tokens.Validate(resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(int64(4)))
			Expect(claims.Username).To(Equal("nco1"))
			Expect(claims.ExpiresAt.Time).To(BeTemporally("~", time.Now().Add(8*time.Hour), time.Minute))

			Expect(repo.touched).To(ConsistOf(int64(4)))
			Expect(auditor.calls).To(ConsistOf(auditCall{4, "LOGIN", "users", 4}))
		})

		It("rejects a wrong password with the generic message", func() {
			_, err := service.Login(ctx, auth.LoginDTO{Username: "nco1", Password: "wrong"})
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
			Expect(auditor.calls).To(BeEmpty())
		})

		It("rejects unknown or deactivated users with the same message", func() {
			_, err := service.Login(ctx, auth.LoginDTO{Username: "ghost", Password: "x"})
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("requires both fields", func() {
			_, err := service.Login(ctx, auth.LoginDTO{Username: "nco1"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("reports store failures as Login failed", func() {
			repo.findErr = errors.New("connection refused")
			_, err := service.Login(ctx, auth.LoginDTO{Username: "nco1", Password: "nco123"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
			Expect(appErr.Message).To(Equal("Login failed"))
		})
	})

	Describe("Authenticate", func() {
		It("accepts a fresh token", func() {
			resp, err := service.Login(ctx, auth.LoginDTO{Username: "admin", Password: "admin123"})
			Expect(err).NotTo(HaveOccurred())

			p, err := service.Authenticate(ctx, resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.UserID).To(Equal(int64(1)))
			Expect(p.TokenID).NotTo(BeEmpty())
		})

		It("rejects an expired token with 403", func() {
			tokens.Now = func() time.Time { return time.Now().Add(-9 * time.Hour) }
			token, _, err := tokens.Generate(1, "admin", 1)
			Expect(err).NotTo(HaveOccurred())
			tokens.Now = time.Now

			_, err = service.Authenticate(ctx, token)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(403))
			Expect(errors.Is(err, auth.ErrTokenExpired)).To(BeTrue())
		})

		It("rejects a token signed with another secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-another-secret-123", time.Hour)
			token, _, err := other.Generate(1, "admin", 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Authenticate(ctx, token)
			Expect(errors.Is(err, auth.ErrInvalidToken)).To(BeTrue())
		})

		It("rejects garbage", func() {
			_, err := service.Authenticate(ctx, "not-a-jwt")
			appErr, _ := internal.IsAppError(err)
			Expect(appErr.Message).To(Equal("Invalid or expired token."))
		})
	})

	Describe("Logout", func() {
		It("revokes the token until it would expire", func() {
			resp, err := service.Login(ctx, auth.LoginDTO{Username: "admin", Password: "admin123"})
			Expect(err).NotTo(HaveOccurred())
			p, err := service.Authenticate(ctx, resp.Token)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Logout(ctx, p)).To(Succeed())
			Expect(mr.TTL("crms:revoked:" + p.TokenID)).To(BeNumerically(">", 7*time.Hour))

			_, err = service.Authenticate(ctx, resp.Token)
			Expect(errors.Is(err, auth.ErrTokenRevoked)).To(BeTrue())
			Expect(auditor.calls[len(auditor.calls)-1].Action).To(Equal("LOGOUT"))
		})

		It("keeps tokens usable when the revocation store fails", func() {
			service = auth.NewService(repo, tokens, failingRevocationStore{}, auditor,
				auth.MustLoadPermissionTable(), slog.New(slog.NewTextHandler(io.Discard, nil)))
			resp, err := service.Login(ctx, auth.LoginDTO{Username: "admin", Password: "admin123"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Authenticate(ctx, resp.Token)
			Expect(err).NotTo(HaveOccurred())
		})

		It("is a no-op without a revocation store", func() {
			service = auth.NewService(repo, tokens, nil, auditor,
				auth.MustLoadPermissionTable(), slog.New(slog.NewTextHandler(io.Discard, nil)))
			resp, err := service.Login(ctx, auth.LoginDTO{Username: "admin", Password: "admin123"})
			Expect(err).NotTo(HaveOccurred())
			p, err := service.Authenticate(ctx, resp.Token)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Logout(ctx, p)).To(Succeed())
			_, err = service.Authenticate(ctx, resp.Token)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Me", func() {
		It("returns the profile with the role's permissions", func() {
			me, err := service.Me(ctx, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(me.Username).To(Equal("nco1"))
			Expect(me.Permissions).To(ContainElement("create_fir"))
		})

		It("is 404 for a missing user", func() {
			_, err := service.Me(ctx, 99)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("RoleName", func() {
		It("maps a missing user to the principal-not-found sentinel", func() {
			_, err := service.RoleName(ctx, 42)
			Expect(auth.IsPrincipalNotFound(err)).To(BeTrue())
		})
	})
})
