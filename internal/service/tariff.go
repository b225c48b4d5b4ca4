package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/tariff"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// TariffService manages tariffs and their consumption band sets.
type TariffService interface {
	CreateTariff(ctx context.Context, req *dto.CreateTariffRequest) (*dto.TariffResponse, error)
	GetTariff(ctx context.Context, id int64) (*dto.TariffResponse, error)
	ListTariffs(ctx context.Context) (*dto.ListTariffsResponse, error)
	UpdateTariff(ctx context.Context, id int64, req *dto.UpdateTariffRequest) (*dto.TariffResponse, error)
	// ReplaceBands swaps the tariff's pricing in one batch, rejecting any
	// set that is not contiguous, non-overlapping and zero-based.
	ReplaceBands(ctx context.Context, tariffID int64, req *dto.ReplaceBandsRequest) (*dto.TariffResponse, error)
	DeleteTariff(ctx context.Context, id int64) error
}

type tariffService struct {
	ServiceParams
}

func NewTariffService(params ServiceParams) TariffService {
	return &tariffService{ServiceParams: params}
}

func (s *tariffService) CreateTariff(ctx context.Context, req *dto.CreateTariffRequest) (*dto.TariffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if len(req.Bands) > 0 {
		if err := tariff.ValidateBands(req.ToBands(0)); err != nil {
			return nil, err
		}
	}

	t := &tariff.Tariff{
		Name:        req.Name,
		Description: req.Description,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	created, err := s.TariffRepo.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	if len(req.Bands) > 0 {
		bands, err := s.TariffRepo.ReplaceBands(ctx, created.ID, req.ToBands(created.ID))
		if err != nil {
			return nil, err
		}
		created.Bands = bands
	}

	s.Logger.Infow("tariff created", "tarifa_id", created.ID, "nombre", created.Name, "rangos", len(created.Bands))
	return &dto.TariffResponse{Tariff: created}, nil
}

func (s *tariffService) GetTariff(ctx context.Context, id int64) (*dto.TariffResponse, error) {
	t, err := s.TariffRepo.GetWithBands(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TariffResponse{Tariff: t}, nil
}

func (s *tariffService) ListTariffs(ctx context.Context) (*dto.ListTariffsResponse, error) {
	tariffs, err := s.TariffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := lo.Map(tariffs, func(t *tariff.Tariff, _ int) *dto.TariffResponse {
		return &dto.TariffResponse{Tariff: t}
	})
	return &dto.ListTariffsResponse{Items: items, Total: len(items)}, nil
}

func (s *tariffService) UpdateTariff(ctx context.Context, id int64, req *dto.UpdateTariffRequest) (*dto.TariffResponse, error) {
	t, err := s.TariffRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Description != "" {
		t.Description = req.Description
	}
	t.UpdatedBy = types.GetUserID(ctx)

	updated, err := s.TariffRepo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	return &dto.TariffResponse{Tariff: updated}, nil
}

func (s *tariffService) ReplaceBands(ctx context.Context, tariffID int64, req *dto.ReplaceBandsRequest) (*dto.TariffResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TariffRepo.Get(ctx, tariffID)
	if err != nil {
		return nil, err
	}

	bands := req.ToBands(tariffID)
	if err := tariff.ValidateBands(bands); err != nil {
		return nil, err
	}

	replaced, err := s.TariffRepo.ReplaceBands(ctx, tariffID, bands)
	if err != nil {
		return nil, err
	}
	t.Bands = replaced

	s.Logger.Infow("tariff bands replaced", "tarifa_id", tariffID, "rangos", len(replaced))
	return &dto.TariffResponse{Tariff: t}, nil
}

func (s *tariffService) DeleteTariff(ctx context.Context, id int64) error {
	if _, err := s.TariffRepo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.TariffRepo.Delete(ctx, id); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete tariff").
			WithReportableDetails(map[string]interface{}{"tarifa_id": id}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}
