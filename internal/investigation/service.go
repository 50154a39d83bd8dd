package investigation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/audit"
	investigationDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/investigation"
)

var (
	errCaseMissing   = internal.NewValidationError("Case not found", internal.ErrCodeReferenceMissing)
	errAlreadyExists = internal.NewValidationError("Investigation already exists for this case", internal.ErrCodeDuplicate)
)

type Service struct {
	repo    RepositoryAPI
	auditor Auditor
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo RepositoryAPI, auditor Auditor, logger *slog.Logger) *Service {
	return &Service{repo: repo, auditor: auditor, logger: logger, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("Failed to fetch investigations", err)
	}
	if rows == nil {
		rows = []View{}
	}
	return rows, nil
}

// Create opens the single investigation a case may have.
func (s *Service) Create(ctx context.Context, actorID int64, dto CreateInvestigationDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}
	status, notes, err := dto.Resolve()
	if err != nil {
		return 0, err
	}
	caseID, officerID := dto.CaseID.Value, dto.AssignedTo.Value

	ok, err := s.repo.CaseExists(ctx, caseID)
	if err != nil {
		return 0, s.createFailed(err)
	}
	if !ok {
		return 0, errCaseMissing
	}
	if err := s.checkOfficer(ctx, officerID); err != nil {
		return 0, err
	}
	exists, err := s.repo.ExistsForCase(ctx, caseID)
	if err != nil {
		return 0, s.createFailed(err)
	}
	if exists {
		return 0, errAlreadyExists
	}

	inv := &investigationDatamodel.Investigation{
		CaseID:        caseID,
		AssignedTo:    officerID,
		Status:        status,
		ProgressNotes: notes,
		LastUpdated:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return 0, errAlreadyExists
		}
		return 0, s.createFailed(err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, audit.TableInvestigations, inv.ID)
	s.logger.InfoContext(ctx, "investigation created", "investigation_id", inv.ID, "case_id", caseID, "assigned_to", officerID)
	return inv.ID, nil
}

// Update changes status, notes or the assigned officer and bumps last_updated.
func (s *Service) Update(ctx context.Context, actorID, id int64, dto UpdateInvestigationDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return s.updateFailed(err)
	}
	if !exists {
		return internal.ErrInvestigationNotFound
	}

	if dto.AssignedTo.Valid {
		if err := s.checkOfficer(ctx, dto.AssignedTo.Value); err != nil {
			return err
		}
	}

	fields, err := dto.Fields()
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return internal.ErrNoFieldsToUpdate
	}
	fields["last_updated"] = s.now().UTC()

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return s.updateFailed(err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, audit.TableInvestigations, id)
	return nil
}

func (s *Service) checkOfficer(ctx context.Context, staffID int64) error {
	active, err := s.repo.OfficerActive(ctx, staffID)
	if err != nil {
		return internal.NewInternalError("Failed to verify officer", err)
	}
	if !active {
		return internal.ErrOfficerUnavailable
	}
	return nil
}

func (s *Service) createFailed(err error) error {
	return internal.NewInternalError("Failed to create investigation", err)
}

func (s *Service) updateFailed(err error) error {
	return internal.NewInternalError("Failed to update investigation", err)
}
