package interfaces

import (
	"context"
	"servicecenter_ops/internal/domain/entities"
)

// IWorkItemRepository abstracts DynamoDB persistence for WorkItem.
//
// Not-found is reported as a zero-value item with a nil error; usecases
// translate that into their own sentinels. Update replaces the whole item
// (last write wins, matching the source system's contract).
type IWorkItemRepository interface {
	Create(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error)
	GetByID(ctx context.Context, id string) (entities.WorkItem, error)
	Update(ctx context.Context, item entities.WorkItem) (entities.WorkItem, error)
	ListAll(ctx context.Context) ([]entities.WorkItem, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkItem, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.WorkItem, error)
	ListByStatus(ctx context.Context, status entities.WorkItemStatus) ([]entities.WorkItem, error)
}
