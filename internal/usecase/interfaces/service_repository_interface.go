package interfaces

import (
	"context"
	"servicecenter_ops/internal/domain/entities"
)

// IServiceRepository reads the bookable offering catalog. The engine never
// writes offerings; catalog maintenance belongs to the admin surface.
type IServiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOffering, error)
	ListActive(ctx context.Context) ([]entities.ServiceOffering, error)
}
