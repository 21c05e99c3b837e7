package response

import "servicecenter_ops/internal/domain/entities"

type ServiceResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	Price            float64 `json:"price"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

func FromService(s entities.ServiceOffering) ServiceResponse {
	return ServiceResponse{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		Price:            s.Price,
		EstimatedMinutes: s.EstimatedMinutes,
	}
}

func FromServices(services []entities.ServiceOffering) []ServiceResponse {
	res := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		res = append(res, FromService(s))
	}
	return res
}
