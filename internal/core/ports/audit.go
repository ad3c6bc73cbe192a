package ports

import (
	"context"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

// AuditService records one authentication event.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository appends auth events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
