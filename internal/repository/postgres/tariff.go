package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/cache"
	domainTariff "github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/logger"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/postgres"
)

const tariffCacheTTL = 5 * time.Minute

type tariffRepository struct {
	client *postgres.Client
	log    *logger.Logger
	cache  cache.Cache
}

func NewTariffRepository(client *postgres.Client, log *logger.Logger, c cache.Cache) domainTariff.Repository {
	return &tariffRepository{client: client, log: log, cache: c}
}

func tariffCacheKey(id int64) string {
	return fmt.Sprintf("tariff:%d", id)
}

func (r *tariffRepository) Create(ctx context.Context, t *domainTariff.Tariff) (*domainTariff.Tariff, error) {
	r.log.Debugw("creating tariff", "name", t.Name)

	if err := r.client.DB(ctx).Omit("Bands").Create(t).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to create tariff").
			Mark(ierr.ErrDatabase)
	}
	return t, nil
}

func (r *tariffRepository) Get(ctx context.Context, id int64) (*domainTariff.Tariff, error) {
	var t domainTariff.Tariff
	err := r.client.DB(ctx).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("tariff not found").
				WithHint("Tariff not found").
				WithReportableDetails(map[string]interface{}{"tarifa_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch tariff").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func (r *tariffRepository) GetWithBands(ctx context.Context, id int64) (*domainTariff.Tariff, error) {
	// Tariffs are read on every rating call, so the full record with
	// bands is served from cache when possible.
	if cached, ok := r.cache.Get(ctx, tariffCacheKey(id)); ok {
		if t, ok := cache.UnmarshalValue[domainTariff.Tariff](cached); ok {
			return t, nil
		}
	}

	var t domainTariff.Tariff
	err := r.client.DB(ctx).
		Preload("Bands", func(db *gorm.DB) *gorm.DB {
			return db.Order("consumo_min ASC")
		}).
		First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierr.NewError("tariff not found").
				WithHint("Tariff not found").
				WithReportableDetails(map[string]interface{}{"tarifa_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch tariff with bands").
			Mark(ierr.ErrDatabase)
	}

	r.cache.Set(ctx, tariffCacheKey(id), &t, tariffCacheTTL)
	return &t, nil
}

func (r *tariffRepository) List(ctx context.Context) ([]*domainTariff.Tariff, error) {
	var tariffs []*domainTariff.Tariff
	if err := r.client.DB(ctx).Order("id ASC").Find(&tariffs).Error; err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tariffs").
			Mark(ierr.ErrDatabase)
	}
	return tariffs, nil
}

func (r *tariffRepository) Update(ctx context.Context, t *domainTariff.Tariff) (*domainTariff.Tariff, error) {
	result := r.client.DB(ctx).Model(&domainTariff.Tariff{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"nombre":      t.Name,
			"descripcion": t.Description,
			"updated_at":  t.UpdatedAt,
			"updated_by":  t.UpdatedBy,
		})
	if result.Error != nil {
		return nil, ierr.WithError(result.Error).
			WithHint("Failed to update tariff").
			Mark(ierr.ErrDatabase)
	}
	if result.RowsAffected == 0 {
		return nil, ierr.NewError("tariff not found").
			WithHint("Tariff not found").
			WithReportableDetails(map[string]interface{}{"tarifa_id": t.ID}).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Delete(ctx, tariffCacheKey(t.ID))
	return r.GetWithBands(ctx, t.ID)
}

func (r *tariffRepository) ReplaceBands(ctx context.Context, tariffID int64, bands []domainTariff.Band) ([]domainTariff.Band, error) {
	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("tarifa_id = ?", tariffID).Delete(&domainTariff.Band{}).Error; err != nil {
			return err
		}
		for i := range bands {
			bands[i].ID = 0
			bands[i].TariffID = tariffID
		}
		if len(bands) == 0 {
			return nil
		}
		return tx.Create(&bands).Error
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to replace tariff bands").
			WithReportableDetails(map[string]interface{}{"tarifa_id": tariffID}).
			Mark(ierr.ErrDatabase)
	}

	r.cache.Delete(ctx, tariffCacheKey(tariffID))
	domainTariff.SortBands(bands)
	return bands, nil
}

func (r *tariffRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("tarifa_id = ?", id).Delete(&domainTariff.Band{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domainTariff.Tariff{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ierr.NewError("tariff not found").
				WithHint("Tariff not found").
				WithReportableDetails(map[string]interface{}{"tarifa_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete tariff").
			Mark(ierr.ErrDatabase)
	}

	r.cache.Delete(ctx, tariffCacheKey(id))
	return nil
}
