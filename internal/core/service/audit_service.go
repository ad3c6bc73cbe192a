package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopforge/commerce-api/internal/api/metrics"
	"github.com/shopforge/commerce-api/internal/core/domain"
	"github.com/shopforge/commerce-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that appends events to the
// audit trail. Failures here are observability losses, never request
// failures — callers run it behind the async dispatcher.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	start := time.Now()

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditEventsErrorsTotal.Inc()
		return fmt.Errorf("record auth event: %w", err)
	}

	metrics.AuditEventsProcessedTotal.WithLabelValues(event.Action, event.Outcome).Inc()
	metrics.AuditProcessingDuration.Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("email", event.Email).
		Str("action", event.Action).
		Str("outcome", event.Outcome).
		Msg("auth event recorded")

	return nil
}
