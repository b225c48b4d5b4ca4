package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainMeter "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
)

type meterRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewMeterRepository(client *postgres.Client, log *logger.Logger) domainMeter.Repository {
	return &meterRepository{client: client, log: log}
}

func (r *meterRepository) Create(ctx context.Context, m *domainMeter.Meter) (*domainMeter.Meter, error) {
	r.log.Debugw("creating meter", "serial_number", m.SerialNumber, "customer_id", m.CustomerID)

	if err := r.client.DB(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ierr.WithError(err).
				WithHint("A meter with this serial number is already registered").
				WithReportableDetails(map[string]interface{}{"numero_serie": m.SerialNumber}).
				Mark(ierr.ErrAlreadyExists)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to create meter").
			Mark(ierr.ErrDatabase)
	}
	return m, nil
}

func (r *meterRepository) Get(ctx context.Context, id int64) (*domainMeter.Meter, error) {
	var m domainMeter.Meter
	err := r.client.DB(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("meter not found").
				WithHint("Meter not found").
				WithReportableDetails(map[string]interface{}{"medidor_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch meter").
			Mark(ierr.ErrDatabase)
	}
	return &m, nil
}

func (r *meterRepository) List(ctx context.Context) ([]*domainMeter.Meter, error) {
	var meters []*domainMeter.Meter
	if err := r.client.DB(ctx).Order("id ASC").Find(&meters).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list meters").
			Mark(ierr.ErrDatabase)
	}
	return meters, nil
}

func (r *meterRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domainMeter.Meter, error) {
	var meters []*domainMeter.Meter
	err := r.client.DB(ctx).
		Where("cliente_id = ?", customerID).
		Order("id ASC").
		Find(&meters).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list meters for customer").
			WithReportableDetails(map[string]interface{}{"cliente_id": customerID}).
			Mark(ierr.ErrDatabase)
	}
	return meters, nil
}

func (r *meterRepository) Update(ctx context.Context, m *domainMeter.Meter) (*domainMeter.Meter, error) {
	result := r.client.DB(ctx).Model(&domainMeter.Meter{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"cliente_id":   m.CustomerID,
			"numero_serie": m.SerialNumber,
			"ubicacion":    m.Location,
			"updated_at":   m.UpdatedAt,
			"updated_by":   m.UpdatedBy,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ierr.WithError(result.Error).
				WithHint("A meter with this serial number is already registered").
				WithReportableDetails(map[string]interface{}{"numero_serie": m.SerialNumber}).
				Mark(ierr.ErrAlreadyExists)
		}
		return nil, ierr.WithError(result.Error).
			WithHint("Failed to update meter").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return nil, ierr.NewError("meter not found").
			WithHint("Meter not found").
			WithReportableDetails(map[string]interface{}{"medidor_id": m.ID}).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, m.ID)
}

func (r *meterRepository) Delete(ctx context.Context, id int64) error {
	result := r.client.DB(ctx).Delete(&domainMeter.Meter{}, id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete meter").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("meter not found").
			WithHint("Meter not found").
			WithReportableDetails(map[string]interface{}{"medidor_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
