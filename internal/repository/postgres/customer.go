package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainCustomer "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
)

type customerRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewCustomerRepository(client *postgres.Client, log *logger.Logger) domainCustomer.Repository {
	return &customerRepository{client: client, log: log}
}

func (r *customerRepository) Create(ctx context.Context, c *domainCustomer.Customer) (*domainCustomer.Customer, error) {
	r.log.Debugw("creating customer", "name", c.Name)

	if err := r.client.DB(ctx).Create(c).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create customer").
			Mark(ierr.ErrDatabase)
	}
	return c, nil
}

func (r *customerRepository) Get(ctx context.Context, id int64) (*domainCustomer.Customer, error) {
	var c domainCustomer.Customer
	err := r.client.DB(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("customer not found").
				WithHint("Customer not found").
				WithReportableDetails(map[string]interface{}{"cliente_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch customer").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]*domainCustomer.Customer, error) {
	var customers []*domainCustomer.Customer
	if err := r.client.DB(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list customers").
			Mark(ierr.ErrDatabase)
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domainCustomer.Customer) (*domainCustomer.Customer, error) {
	result := r.client.DB(ctx).Model(&domainCustomer.Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"nombre":     c.Name,
			"apellido":   c.LastName,
			"direccion":  c.Address,
			"telefono":   c.Phone,
			"email":      c.Email,
			"tarifa_id":  c.TariffID,
			"ruta_id":    c.RouteID,
			"updated_at": c.UpdatedAt,
			"updated_by": c.UpdatedBy,
		})
	if result.Error != nil {
		return nil, ierr.WithError(result.Error).
			WithHint("Failed to update customer").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return nil, ierr.NewError("customer not found").
			WithHint("Customer not found").
			WithReportableDetails(map[string]interface{}{"cliente_id": c.ID}).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, c.ID)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	result := r.client.DB(ctx).Delete(&domainCustomer.Customer{}, id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete customer").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("customer not found").
			WithHint("Customer not found").
			WithReportableDetails(map[string]interface{}{"cliente_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
