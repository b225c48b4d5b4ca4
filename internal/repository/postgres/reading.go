package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainReading "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

type readingRepository struct {
	client *postgres.Client
	log    *logger.Logger
}

func NewReadingRepository(client *postgres.Client, log *logger.Logger) domainReading.Repository {
	return &readingRepository{client: client, log: log}
}

func (r *readingRepository) Create(ctx context.Context, rd *domainReading.Reading) (*domainReading.Reading, error) {
	r.log.Debugw("creating reading",
		"meter_id", rd.MeterID,
		"period", rd.Period.String(),
	)

	if err := r.client.DB(ctx).Create(rd).Error; err != nil {
		// The composite unique index on (medidor_id, periodo) is the
		// final arbiter under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ierr.WithError(err).
				WithHint("Only one reading per meter and period is allowed").
				WithReportableDetails(map[string]interface{}{
					"medidor_id": rd.MeterID,
					"periodo":    rd.Period.String(),
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to create reading").
			Mark(ierr.ErrDatabase)
	}
	return rd, nil
}

func (r *readingRepository) Get(ctx context.Context, id int64) (*domainReading.Reading, error) {
	var rd domainReading.Reading
	err := r.client.DB(ctx).First(&rd, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("reading not found").
				WithHint("Reading not found").
				WithReportableDetails(map[string]interface{}{"lectura_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch reading").
			Mark(ierr.ErrDatabase)
	}
	return &rd, nil
}

func (r *readingRepository) List(ctx context.Context) ([]*domainReading.Reading, error) {
	var readings []*domainReading.Reading
	if err := r.client.DB(ctx).Order("id ASC").Find(&readings).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list readings").
			Mark(ierr.ErrDatabase)
	}
	return readings, nil
}

func (r *readingRepository) ListByPeriod(ctx context.Context, period types.Period) ([]*domainReading.Reading, error) {
	var readings []*domainReading.Reading
	err := r.client.DB(ctx).
		Where("periodo = ?", period).
		Order("id ASC").
		Find(&readings).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list readings for period").
			WithReportableDetails(map[string]interface{}{"periodo": period.String()}).
			Mark(ierr.ErrDatabase)
	}
	return readings, nil
}

func (r *readingRepository) ListUnbilledByPeriod(ctx context.Context, period types.Period) ([]*domainReading.Reading, error) {
	var readings []*domainReading.Reading
	err := r.client.DB(ctx).
		Where("periodo = ?", period).
		Where("id NOT IN (?)",
			r.client.DB(ctx).Table("facturas").Select("lectura_id"),
		).
		Order("id ASC").
		Find(&readings).Error
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list unbilled readings for period").
			WithReportableDetails(map[string]interface{}{"periodo": period.String()}).
			Mark(ierr.ErrDatabase)
	}
	return readings, nil
}

func (r *readingRepository) Update(ctx context.Context, rd *domainReading.Reading) (*domainReading.Reading, error) {
	result := r.client.DB(ctx).Model(&domainReading.Reading{}).
		Where("id = ?", rd.ID).
		Updates(map[string]interface{}{
			"consumo_m3":    rd.Consumption,
			"fecha_lectura": rd.ReadingDate,
			"ruta_id":       rd.RouteID,
			"updated_at":    rd.UpdatedAt,
			"updated_by":    rd.UpdatedBy,
		})
	if result.Error != nil {
		return nil, ierr.WithError(result.Error).
			WithHint("Failed to update reading").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return nil, ierr.NewError("reading not found").
			WithHint("Reading not found").
			WithReportableDetails(map[string]interface{}{"lectura_id": rd.ID}).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, rd.ID)
}

func (r *readingRepository) Delete(ctx context.Context, id int64) error {
	result := r.client.DB(ctx).Delete(&domainReading.Reading{}, id)
	if result.Error != nil {
		return ierr.WithError(result.Error).
			WithHint("Failed to delete reading").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return ierr.NewError("reading not found").
			WithHint("Reading not found").
			WithReportableDetails(map[string]interface{}{"lectura_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
