package usecase

import (
	"context"
	"errors"
	"strings"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound  = errors.New("service offering not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

// ICatalogUseCase exposes the read-only offering catalog consumed by the
// customer booking surface.

type ICatalogUseCase interface {
	ListActiveServices(ctx context.Context) ([]entities.ServiceOffering, error)
	GetService(ctx context.Context, id string) (entities.ServiceOffering, error)
}

type CatalogUseCase struct {
	services interfaces.IServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services}
}

func (u *CatalogUseCase) ListActiveServices(ctx context.Context) ([]entities.ServiceOffering, error) {
	return u.services.ListActive(ctx)
}

// GetService resolves an offering for booking purposes: inactive offerings
// are reported as not found, same as absent ones.
func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.ServiceOffering, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOffering{}, ErrInvalidServiceID
	}

	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOffering{}, err
	}
	if s.ID == "" || !s.Active {
		return entities.ServiceOffering{}, ErrServiceNotFound
	}
	return s, nil
}
