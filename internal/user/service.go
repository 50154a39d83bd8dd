package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
	userDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUsernameTaken = internal.NewValidationError("Username already exists", internal.ErrCodeDuplicate)
	errRoleMissing   = internal.NewValidationError("Role not found", internal.ErrCodeReferenceMissing)
	errStaffMissing  = internal.NewValidationError("Staff member not found", internal.ErrCodeReferenceMissing)
	errStaffHasUser  = internal.NewValidationError("Staff member already has a user account", internal.ErrCodeDuplicate)
)

type Service struct {
	repo        RepositoryAPI
	permissions PermissionSource
	auditor     Auditor
	bcryptCost  int
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, permissions PermissionSource, auditor Auditor, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:        repo,
		permissions: permissions,
		auditor:     auditor,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch users", err)
	}
	if rows == nil {
		rows = []View{}
	}
	return rows, nil
}

// Roles lists every role with the permissions the server grants it.
func (s *Service) Roles(ctx context.Context) ([]Role, error) {
	roles, err := s.repo.Roles(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch roles", err)
	}
	for i := range roles {
		roles[i].Permissions = s.permissions.Permissions(roles[i].RoleName)
		if roles[i].Permissions == nil {
			roles[i].Permissions = []string{}
		}
	}
	return roles, nil
}

// Create adds a login for an existing staff member. Each staff member has at most one.
func (s *Service) Create(ctx context.Context, actorID int64, dto CreateUserDTO) (int64, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	if err := s.checkCreate(ctx, dto); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return 0, internal.NewInternalError("Failed to create user", err)
	}

	u := &userDatamodel.User{
		Username:     dto.Username,
		PasswordHash: string(hash),
		RoleID:       dto.RoleID.Value,
		StaffID:      dto.StaffID.Value,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			// a concurrent create won; the checks now name the clash
			if err := s.checkCreate(ctx, dto); err != nil {
				return 0, err
			}
			return 0, errUsernameTaken
		}
		return 0, internal.NewInternalError("Failed to create user", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, audit.TableUsers, u.ID)
	s.logger.InfoContext(ctx, "user created", "user_id", u.ID, "role_id", u.RoleID)
	return u.ID, nil
}

func (s *Service) checkCreate(ctx context.Context, dto CreateUserDTO) error {
	checks := []struct {
		fn      func(context.Context) (bool, error)
		failOn  bool
		failErr error
	}{
		{func(ctx context.Context) (bool, error) { return s.repo.UsernameExists(ctx, dto.Username) }, true, errUsernameTaken},
		{func(ctx context.Context) (bool, error) { return s.repo.RoleExists(ctx, dto.RoleID.Value) }, false, errRoleMissing},
		{func(ctx context.Context) (bool, error) { return s.repo.StaffExists(ctx, dto.StaffID.Value) }, false, errStaffMissing},
		{func(ctx context.Context) (bool, error) { return s.repo.StaffHasUser(ctx, dto.StaffID.Value) }, true, errStaffHasUser},
	}
	for _, c := range checks {
		got, err := c.fn(ctx)
		if err != nil {
			return internal.NewInternalError("Failed to create user", err)
		}
		if got == c.failOn {
			return c.failErr
		}
	}
	return nil
}

// Update changes the role and/or reactivates or deactivates the staff record.
func (s *Service) Update(ctx context.Context, actorID, id int64, dto UpdateUserDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return internal.NewInternalError("Failed to update user", err)
	}
	if u == nil {
		return internal.ErrUserNotFound
	}

	var roleID *int64
	if dto.RoleID.Valid {
		ok, err := s.repo.RoleExists(ctx, dto.RoleID.Value)
		if err != nil {
			return internal.NewInternalError("Failed to update user", err)
		}
		if !ok {
			return errRoleMissing
		}
		roleID = &dto.RoleID.Value
	}

	if err := s.repo.Update(ctx, u, roleID, dto.IsActive); err != nil {
		return internal.NewInternalError("Failed to update user", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, audit.TableUsers, id)
	return nil
}

// Deactivate is the only form of deletion: the staff record is flagged
// inactive and the user can no longer log in.
func (s *Service) Deactivate(ctx context.Context, actorID, id int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return internal.NewInternalError("Failed to deactivate user", err)
	}
	if u == nil {
		return internal.ErrUserNotFound
	}
	if err := s.repo.SetStaffActive(ctx, u.StaffID, false); err != nil {
		return internal.NewInternalError("Failed to deactivate user", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionDeactivate, audit.TableUsers, id)
	s.logger.InfoContext(ctx, "user deactivated", "user_id", id, "staff_id", u.StaffID)
	return nil
}
