package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// RouteService manages delivery/reading routes.
type RouteService interface {
	CreateRoute(ctx context.Context, req *dto.CreateRouteRequest) (*dto.RouteResponse, error)
	GetRoute(ctx context.Context, id int64) (*dto.RouteResponse, error)
	ListRoutes(ctx context.Context) (*dto.ListRoutesResponse, error)
	UpdateRoute(ctx context.Context, id int64, req *dto.UpdateRouteRequest) (*dto.RouteResponse, error)
	DeleteRoute(ctx context.Context, id int64) error
}

type routeService struct {
	ServiceParams
}

func NewRouteService(params ServiceParams) RouteService {
	return &routeService{ServiceParams: params}
}

func (s *routeService) CreateRoute(ctx context.Context, req *dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r := &route.Route{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	created, err := s.RouteRepo.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.RouteResponse{Route: created}, nil
}

func (s *routeService) GetRoute(ctx context.Context, id int64) (*dto.RouteResponse, error) {
	r, err := s.RouteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.RouteResponse{Route: r}, nil
}

func (s *routeService) ListRoutes(ctx context.Context) (*dto.ListRoutesResponse, error) {
	routes, err := s.RouteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := lo.Map(routes, func(r *route.Route, _ int) *dto.RouteResponse {
		return &dto.RouteResponse{Route: r}
	})
	return &dto.ListRoutesResponse{Items: items, Total: len(items)}, nil
}

func (s *routeService) UpdateRoute(ctx context.Context, id int64, req *dto.UpdateRouteRequest) (*dto.RouteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r, err := s.RouteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.AssignedTo != nil {
		r.AssignedTo = *req.AssignedTo
	}
	r.UpdatedBy = types.GetUserID(ctx)

	updated, err := s.RouteRepo.Update(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.RouteResponse{Route: updated}, nil
}

func (s *routeService) DeleteRoute(ctx context.Context, id int64) error {
	if _, err := s.RouteRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.RouteRepo.Delete(ctx, id)
}
