package interfaces

import (
	"context"
	"servicecenter_ops/internal/domain/entities"
)

// IVehicleRepository reads the vehicle registry (booking validation and the
// dashboard vehicle counter).
type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	CountAll(ctx context.Context) (int, error)
}
