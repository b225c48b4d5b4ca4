package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainRoute "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/route"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
)

type routeRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewRouteRepository(client *postgres.Client, log *logger.Logger) domainRoute.Repository {
	return &routeRepository{client: client, log: log}
}

func (r *routeRepository) Create(ctx context.Context, rt *domainRoute.Route) (*domainRoute.Route, error) {
	r.log.Debugw("creating route", "name", rt.Name)

	if err := r.client.DB(ctx).Create(rt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ierr.WithError(err).
				WithHint("A route with this name already exists").
				WithReportableDetails(map[string]interface{}{"nombre": rt.Name}).
				Mark(ierr.ErrAlreadyExists)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to create route").
			Mark(ierr.ErrDatabase)
	}
	return rt, nil
}

func (r *routeRepository) Get(ctx context.Context, id int64) (*domainRoute.Route, error) {
	var rt domainRoute.Route
	err := r.client.DB(ctx).First(&rt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("route not found").
				WithHint("Route not found").
				WithReportableDetails(map[string]interface{}{"ruta_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch route").
			Mark(ierr.ErrDatabase)
	}
	return &rt, nil
}

func (r *routeRepository) List(ctx context.Context) ([]*domainRoute.Route, error) {
	var routes []*domainRoute.Route
	if err := r.client.DB(ctx).Order("id ASC").Find(&routes).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list routes").
			Mark(ierr.ErrDatabase)
	}
	return routes, nil
}

func (r *routeRepository) Update(ctx context.Context, rt *domainRoute.Route) (*domainRoute.Route, error) {
	result := r.client.DB(ctx).Model(&domainRoute.Route{}).
		Where("id = ?", rt.ID).
		Updates(map[string]interface{}{
			"nombre":      rt.Name,
			"descripcion": rt.Description,
			"asignado_a":  rt.AssignedTo,
			"updated_at":  rt.UpdatedAt,
			"updated_by":  rt.UpdatedBy,
		})
	if result.Error != nil {
		return nil, ierr.WithError(result.Error).
			WithHint("Failed to update route").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return nil, ierr.NewError("route not found").
			WithHint("Route not found").
			WithReportableDetails(map[string]interface{}{"ruta_id": rt.ID}).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, rt.ID)
}

func (r *routeRepository) Delete(ctx context.Context, id int64) error {
	result := r.client.DB(ctx).Delete(&domainRoute.Route{}, id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete route").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("route not found").
			WithHint("Route not found").
			WithReportableDetails(map[string]interface{}{"ruta_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
