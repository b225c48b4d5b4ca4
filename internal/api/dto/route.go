package dto

import (
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/validator"
)

type CreateRouteRequest struct {
	Name        string `json:"nombre" validate:"required"`
	Description string `json:"descripcion,omitempty"`
	AssignedTo  string `json:"asignado_a,omitempty"`
}

func (r *CreateRouteRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateRouteRequest struct {
	Name        *string `json:"nombre,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	AssignedTo  *string `json:"asignado_a,omitempty"`
}

func (r *UpdateRouteRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type RouteResponse struct {
	*route.Route
}

type ListRoutesResponse struct {
	Items []*RouteResponse `json:"items"`
	Total int              `json:"total"`
}
