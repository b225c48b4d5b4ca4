package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/reading"
	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// ReadingService records meter readings, at most one per meter and period.
type ReadingService interface {
	CreateReading(ctx context.Context, req *dto.CreateReadingRequest) (*dto.ReadingResponse, error)
	GetReading(ctx context.Context, id int64) (*dto.ReadingResponse, error)
	ListReadings(ctx context.Context) (*dto.ListReadingsResponse, error)
	ListReadingsByPeriod(ctx context.Context, period string) (*dto.ListReadingsResponse, error)
	UpdateReading(ctx context.Context, id int64, req *dto.UpdateReadingRequest) (*dto.ReadingResponse, error)
	DeleteReading(ctx context.Context, id int64) error
}

type readingService struct {
	ServiceParams
}

func NewReadingService(params ServiceParams) ReadingService {
	return &readingService{ServiceParams: params}
}

func (s *readingService) CreateReading(ctx context.Context, req *dto.CreateReadingRequest) (*dto.ReadingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period, err := types.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	if req.Consumption.IsNegative() {
		return nil, ierr.NewError("consumption cannot be negative").
			WithHint("Consumption must be zero or greater").
			WithReportableDetails(map[string]interface{}{
				"consumo_m3": req.Consumption.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	m, err := s.MeterRepo.Get(ctx, req.MeterID)
	if err != nil {
		return nil, err
	}

	readingDate := time.Now().UTC()
	if req.ReadingDate != nil {
		readingDate = req.ReadingDate.UTC()
	}

	routeID := req.RouteID
	if routeID == nil {
		// Fall back to the customer's assigned route.
		if c, err := s.CustomerRepo.Get(ctx, m.CustomerID); err == nil {
			routeID = c.RouteID
		}
	}

	rd := &reading.Reading{
		MeterID:     req.MeterID,
		RouteID:     routeID,
		Consumption: req.Consumption,
		ReadingDate: readingDate,
		Period:      period,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	created, err := s.ReadingRepo.Create(ctx, rd)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("reading recorded",
		"lectura_id", created.ID,
		"medidor_id", created.MeterID,
		"periodo", period.String(),
		"consumo_m3", created.Consumption.String(),
	)
	return &dto.ReadingResponse{Reading: created}, nil
}

func (s *readingService) GetReading(ctx context.Context, id int64) (*dto.ReadingResponse, error) {
	rd, err := s.ReadingRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ReadingResponse{Reading: rd}, nil
}

func (s *readingService) ListReadings(ctx context.Context) (*dto.ListReadingsResponse, error) {
	readings, err := s.ReadingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return newListReadingsResponse(readings), nil
}

func (s *readingService) ListReadingsByPeriod(ctx context.Context, periodStr string) (*dto.ListReadingsResponse, error) {
	period, err := types.ParsePeriod(periodStr)
	if err != nil {
		return nil, err
	}
	readings, err := s.ReadingRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	return newListReadingsResponse(readings), nil
}

func (s *readingService) UpdateReading(ctx context.Context, id int64, req *dto.UpdateReadingRequest) (*dto.ReadingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rd, err := s.ReadingRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A billed reading is frozen: its invoice total was computed from it.
	if inv, err := s.InvoiceRepo.GetByReading(ctx, id); err == nil && inv != nil {
		return nil, ierr.NewError("reading is already billed").
			WithHint("A reading cannot be modified after it has been invoiced").
			WithReportableDetails(map[string]interface{}{
				"lectura_id": id,
				"factura_id": inv.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	if req.Consumption != nil {
		if req.Consumption.IsNegative() {
			return nil, ierr.NewError("consumption cannot be negative").
				WithHint("Consumption must be zero or greater").
				Mark(ierr.ErrValidation)
		}
		rd.Consumption = *req.Consumption
	}
	if req.ReadingDate != nil {
		rd.ReadingDate = req.ReadingDate.UTC()
	}
	rd.UpdatedBy = types.GetUserID(ctx)

	updated, err := s.ReadingRepo.Update(ctx, rd)
	if err != nil {
		return nil, err
	}
	return &dto.ReadingResponse{Reading: updated}, nil
}

func (s *readingService) DeleteReading(ctx context.Context, id int64) error {
	if _, err := s.ReadingRepo.Get(ctx, id); err != nil {
		return err
	}
	if inv, err := s.InvoiceRepo.GetByReading(ctx, id); err == nil && inv != nil {
		return ierr.NewError("reading is already billed").
			WithHint("A reading cannot be deleted after it has been invoiced").
			WithReportableDetails(map[string]interface{}{
				"lectura_id": id,
				"factura_id": inv.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	} else if err != nil && !ierr.IsNotFound(err) {
		return err
	}
	return s.ReadingRepo.Delete(ctx, id)
}

func newListReadingsResponse(readings []*reading.Reading) *dto.ListReadingsResponse {
	items := lo.Map(readings, func(rd *reading.Reading, _ int) *dto.ReadingResponse {
		return &dto.ReadingResponse{Reading: rd}
	})
	return &dto.ListReadingsResponse{Items: items, Total: len(items)}
}
