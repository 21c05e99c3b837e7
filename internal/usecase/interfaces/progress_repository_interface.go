package interfaces

import (
	"context"
	"servicecenter_ops/internal/domain/entities"
)

// IProgressUpdateRepository persists the append-only progress history.
type IProgressUpdateRepository interface {
	Append(ctx context.Context, update entities.ProgressUpdate) (entities.ProgressUpdate, error)
	ListByWorkItemID(ctx context.Context, workItemID string) ([]entities.ProgressUpdate, error)
}

// ITimeLogRepository persists logged-time entries.
type ITimeLogRepository interface {
	Append(ctx context.Context, logEntry entities.TimeLog) (entities.TimeLog, error)
	ListByWorkItemID(ctx context.Context, workItemID string) ([]entities.TimeLog, error)
}
