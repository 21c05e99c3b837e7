package interfaces

import (
	"context"
	"servicecenter_ops/internal/domain/entities"
)

// IEmployeeRepository reads the assignable workforce registry.
type IEmployeeRepository interface {
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	ListAll(ctx context.Context) ([]entities.Employee, error)
}
