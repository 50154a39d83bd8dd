package user_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/auth"
	"github.com/frahmantamala/crms/internal/database/dbtest"
	"github.com/frahmantamala/crms/internal/transport"
	"github.com/frahmantamala/crms/internal/user"
	"github.com/frahmantamala/crms/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	staffDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/staff"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
)

type recordingAuditor struct{ actions []string }

func (a *recordingAuditor) Record(ctx context.Context, userID int64, action, table string, recordID int64) {
	a.actions = append(a.actions, action)
}

// racingRepository runs first just before the insert, as a request that
// passed the same checks and committed in between would.
type racingRepository struct {
	user.RepositoryAPI
	first func()
}

func (r *racingRepository) Create(ctx context.Context, u *userDatamodel.User) error {
	r.first()
	return r.RepositoryAPI.Create(ctx, u)
}

func appMessage(err error) string {
	appErr, ok := internal.IsAppError(err)
	Expect(ok).To(BeTrue(), "expected AppError, got %v", err)
	return appErr.Message
}

var _ = Describe("Service", func() {
	var (
		db      *gorm.DB
		auditor *recordingAuditor
		service *user.Service
		ctx     context.Context
		admin   *userDatamodel.User
	)

	BeforeEach(func() {
		var err error
		db, err = dbtest.New()
		Expect(err).NotTo(HaveOccurred())
		admin, err = dbtest.User(db, "admin", "admin123", dbtest.RoleAdmin)
		Expect(err).NotTo(HaveOccurred())

		auditor = &recordingAuditor{}
		service = user.NewService(postgres.NewUserRepository(db), auth.MustLoadPermissionTable(),
			auditor, bcrypt.MinCost, slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = context.Background()
	})

	staffActive := func(staffID int64) bool {
		var s staffDatamodel.PoliceStaff
		Expect(db.First(&s, "staff_id = ?", staffID).Error).To(Succeed())
		return s.IsActive
	}

	Describe("Create", func() {
		var officer *staffDatamodel.PoliceStaff

		BeforeEach(func() {
			var err error
			officer, err = dbtest.Staff(db, "Const. Pillai", "B-500", true)
			Expect(err).NotTo(HaveOccurred())
		})

		It("stores a bcrypt hash, never the password", func() {
			id, err := service.Create(ctx, admin.ID, user.CreateUserDTO{
				Username: "pillai", Password: "s3cret",
				RoleID: transport.NewFlexibleID(dbtest.RoleNCO), StaffID: transport.NewFlexibleID(officer.ID),
			})
			Expect(err).NotTo(HaveOccurred())

			var u userDatamodel.User
			Expect(db.First(&u, "user_id = ?", id).Error).To(Succeed())
			Expect(u.PasswordHash).NotTo(Equal("s3cret"))
			Expect(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret"))).To(Succeed())
			Expect(auditor.actions).To(ConsistOf("CREATE"))
		})

		DescribeTable("rejections",
			func(mutate func(*user.CreateUserDTO), msg string) {
				dto := user.CreateUserDTO{
					Username: "pillai", Password: "pw",
					RoleID: transport.NewFlexibleID(dbtest.RoleNCO), StaffID: transport.NewFlexibleID(officer.ID),
				}
				mutate(&dto)
				_, err := service.Create(ctx, admin.ID, dto)
				Expect(appMessage(err)).To(Equal(msg))
			},
			Entry("duplicate username", func(d *user.CreateUserDTO) { d.Username = "admin" }, "Username already exists"),
			Entry("unknown role", func(d *user.CreateUserDTO) { d.RoleID = transport.NewFlexibleID(42) }, "Role not found"),
			Entry("unknown staff", func(d *user.CreateUserDTO) { d.StaffID = transport.NewFlexibleID(4242) }, "Staff member not found"),
			Entry("staff already has a login", func(d *user.CreateUserDTO) { d.StaffID = transport.NewFlexibleID(admin.StaffID) }, "Staff member already has a user account"),
			Entry("missing password", func(d *user.CreateUserDTO) { d.Password = "" }, "Username, password, role and staff are required"),
		)

		Context("when a concurrent create commits first", func() {
			racing := func(first func()) *user.Service {
				repo := &racingRepository{RepositoryAPI: postgres.NewUserRepository(db), first: first}
				return user.NewService(repo, auth.MustLoadPermissionTable(), auditor, bcrypt.MinCost, slog.New(slog.NewTextHandler(io.Discard, nil)))
			}

			It("names the username clash", func() {
				svc := racing(func() {
					_, err := dbtest.User(db, "pillai", "pw", dbtest.RoleCID)
					Expect(err).NotTo(HaveOccurred())
				})
				_, err := svc.Create(ctx, admin.ID, user.CreateUserDTO{
					Username: "pillai", Password: "pw",
					RoleID: transport.NewFlexibleID(dbtest.RoleNCO), StaffID: transport.NewFlexibleID(officer.ID),
				})
				Expect(appMessage(err)).To(Equal("Username already exists"))
				Expect(auditor.actions).To(BeEmpty())
			})

			It("names the staff account clash", func() {
				svc := racing(func() {
					Expect(db.Create(&userDatamodel.User{
						Username: "pillai2", PasswordHash: "x", RoleID: dbtest.RoleNCO, StaffID: officer.ID,
					}).Error).To(Succeed())
				})
				_, err := svc.Create(ctx, admin.ID, user.CreateUserDTO{
					Username: "pillai", Password: "pw",
					RoleID: transport.NewFlexibleID(dbtest.RoleNCO), StaffID: transport.NewFlexibleID(officer.ID),
				})
				Expect(appMessage(err)).To(Equal("Staff member already has a user account"))
			})
		})
	})

	Describe("Update", func() {
		It("changes role and active flag together", func() {
			cid, err := dbtest.User(db, "cid1", "pw", dbtest.RoleCID)
			Expect(err).NotTo(HaveOccurred())

			inactive := false
			err = service.Update(ctx, admin.ID, cid.ID, user.UpdateUserDTO{
				RoleID: transport.NewFlexibleID(dbtest.RoleSuperintendent), IsActive: &inactive,
			})
			Expect(err).NotTo(HaveOccurred())

			var u userDatamodel.User
			Expect(db.First(&u, "user_id = ?", cid.ID).Error).To(Succeed())
			Expect(u.RoleID).To(Equal(dbtest.RoleSuperintendent))
			Expect(staffActive(cid.StaffID)).To(BeFalse())
		})

		It("is 404 for an unknown user", func() {
			active := true
			err := service.Update(ctx, admin.ID, 999, user.UpdateUserDTO{IsActive: &active})
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})

		It("rejects an empty body", func() {
			err := service.Update(ctx, admin.ID, admin.ID, user.UpdateUserDTO{})
			Expect(err).To(Equal(internal.ErrNoFieldsToUpdate))
		})

		It("leaves everything unchanged when the role is unknown", func() {
			inactive := false
			err := service.Update(ctx, admin.ID, admin.ID, user.UpdateUserDTO{RoleID: transport.NewFlexibleID(77), IsActive: &inactive})
			Expect(appMessage(err)).To(Equal("Role not found"))
			Expect(staffActive(admin.StaffID)).To(BeTrue())
		})
	})

	Describe("Deactivate", func() {
		It("flags the staff record and keeps every row", func() {
			nco, err := dbtest.User(db, "nco1", "pw", dbtest.RoleNCO)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Deactivate(ctx, admin.ID, nco.ID)).To(Succeed())
			Expect(staffActive(nco.StaffID)).To(BeFalse())
			Expect(dbtest.Count(db, "users")).To(Equal(int64(2)))
			Expect(auditor.actions).To(ConsistOf("DEACTIVATE"))
		})

		It("is 404 for an unknown user", func() {
			Expect(service.Deactivate(ctx, admin.ID, 31337)).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("List and Roles", func() {
		It("joins role and staff details", func() {
			rows, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].RoleName).To(Equal("Admin"))
			Expect(rows[0].BadgeNumber).To(Equal("B-admin"))
			Expect(rows[0].IsActive).To(BeTrue())
		})

		It("orders roles by name and attaches permissions", func() {
			roles, err := service.Roles(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(roles).To(HaveLen(4))
			Expect(roles[0].RoleName).To(Equal("Admin"))
			Expect(roles[0].Permissions).To(ContainElement("all"))
			Expect(roles[3].RoleName).To(Equal("Superintendent"))
			Expect(roles[3].Permissions).To(ContainElement("view_audit_logs"))
		})
	})
})
