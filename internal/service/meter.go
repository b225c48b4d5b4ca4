package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/meter"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// MeterService manages the physical meters.
type MeterService interface {
	CreateMeter(ctx context.Context, req *dto.CreateMeterRequest) (*dto.MeterResponse, error)
	GetMeter(ctx context.Context, id int64) (*dto.MeterResponse, error)
	ListMeters(ctx context.Context) (*dto.ListMetersResponse, error)
	ListMetersByCustomer(ctx context.Context, customerID int64) (*dto.ListMetersResponse, error)
	UpdateMeter(ctx context.Context, id int64, req *dto.UpdateMeterRequest) (*dto.MeterResponse, error)
	DeleteMeter(ctx context.Context, id int64) error
}

type meterService struct {
	ServiceParams
}

func NewMeterService(params ServiceParams) MeterService {
	return &meterService{ServiceParams: params}
}

func (s *meterService) CreateMeter(ctx context.Context, req *dto.CreateMeterRequest) (*dto.MeterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	m := &meter.Meter{
		CustomerID:   req.CustomerID,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
	created, err := s.MeterRepo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	s.Logger.Infow("meter created", "medidor_id", created.ID, "numero_serie", created.SerialNumber)
	return &dto.MeterResponse{Meter: created}, nil
}

func (s *meterService) GetMeter(ctx context.Context, id int64) (*dto.MeterResponse, error) {
	m, err := s.MeterRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MeterResponse{Meter: m}, nil
}

func (s *meterService) ListMeters(ctx context.Context) (*dto.ListMetersResponse, error) {
	meters, err := s.MeterRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return newListMetersResponse(meters), nil
}

func (s *meterService) ListMetersByCustomer(ctx context.Context, customerID int64) (*dto.ListMetersResponse, error) {
	meters, err := s.MeterRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return newListMetersResponse(meters), nil
}

func (s *meterService) UpdateMeter(ctx context.Context, id int64, req *dto.UpdateMeterRequest) (*dto.MeterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.MeterRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SerialNumber != nil {
		m.SerialNumber = *req.SerialNumber
	}
	if req.Location != nil {
		m.Location = *req.Location
	}
	m.UpdatedBy = types.GetUserID(ctx)

	updated, err := s.MeterRepo.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	return &dto.MeterResponse{Meter: updated}, nil
}

func (s *meterService) DeleteMeter(ctx context.Context, id int64) error {
	if _, err := s.MeterRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.MeterRepo.Delete(ctx, id)
}

func newListMetersResponse(meters []*meter.Meter) *dto.ListMetersResponse {
	items := lo.Map(meters, func(m *meter.Meter, _ int) *dto.MeterResponse {
		return &dto.MeterResponse{Meter: m}
	})
	return &dto.ListMetersResponse{Items: items, Total: len(items)}
}
