package audit

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/crms/internal/core/events"
	"github.com/frahmantamala/crms/pkg/logger"
)

// Recorder is the write side of the audit trail. Recording never fails from
// the caller's point of view: the action it describes has already happened.
type Recorder struct {
	bus    *events.EventBus
	logger *slog.Logger
}

func NewRecorder(bus *events.EventBus, lg *slog.Logger) *Recorder {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &Recorder{bus: bus, logger: lg}
}

func (r *Recorder) Record(ctx context.Context, userID int64, action, table string, recordID int64) {
	event := events.NewAuditRecorded(userID, action, table, recordID)
	if err := r.bus.PublishSync(context.WithoutCancel(ctx), event); err != nil {
		logger.From(ctx).WarnContext(ctx, "audit entry not recorded",
			"user_id", userID,
			"action", action,
			"table", table,
			"record_id", recordID,
			"error", err)
	}
}
