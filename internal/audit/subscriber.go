package audit

import (
	"context"
	"fmt"

	auditDatamodel "github.com/frahmantamala/crms/internal/core/datamodel/audit"
	"github.com/frahmantamala/crms/internal/core/events"
	"github.com/frahmantamala/crms/pkg/metrics"
)

// RegisterSubscribers wires persistence and, when m is non-nil, counters onto the bus.
func RegisterSubscribers(bus *events.EventBus, repo RepositoryAPI, m *metrics.Metrics) {
	bus.Subscribe(events.EventTypeAuditRecorded, func(ctx context.Context, e events.Event) error {
		rec, ok := e.(events.AuditRecorded)
		if !ok {
			return fmt.Errorf("unexpected payload %T", e)
		}
		err := repo.Insert(ctx, &auditDatamodel.LogEntry{
			UserID:    rec.UserID,
			Action:    rec.Action,
			Table:     rec.Table,
			RecordID:  rec.RecordID,
			Timestamp: rec.Timestamp,
		})
		if err != nil && m != nil {
			m.AuditFailures.Inc()
		}
		return err
	})

	if m == nil {
		return
	}
	bus.Subscribe(events.EventTypeAuditRecorded, func(ctx context.Context, e events.Event) error {
		if rec, ok := e.(events.AuditRecorded); ok {
			m.AuditEntries.WithLabelValues(rec.Action, rec.Table).Inc()
		}
		return nil
	})
}
