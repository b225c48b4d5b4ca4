package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mahynlo/Api-AguaVp-sub000/internal/api/dto"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/domain/customer"
	"github.com/Mahynlo/Api-AguaVp-sub000/internal/types"
)

// CustomerService manages account holders.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context) (*dto.ListCustomersResponse, error)
	UpdateCustomer(ctx context.Context, id int64, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// An assigned tariff must exist before it can be billed against.
	if req.TariffID != nil {
		if _, err := s.TariffRepo.Get(ctx, *req.TariffID); err != nil {
			return nil, err
		}
	}
	if req.RouteID != nil {
		if _, err := s.RouteRepo.Get(ctx, *req.RouteID); err != nil {
			return nil, err
		}
	}

	created, err := s.CustomerRepo.Create(ctx, req.ToCustomer(types.GetDefaultBaseModel(ctx)))
	if err != nil {
		return nil, err
	}
	s.Logger.Infow("customer created", "cliente_id", created.ID)
	return &dto.CustomerResponse{Customer: created}, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) ListCustomers(ctx context.Context) (*dto.ListCustomersResponse, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := lo.Map(customers, func(c *customer.Customer, _ int) *dto.CustomerResponse {
		return &dto.CustomerResponse{Customer: c}
	})
	return &dto.ListCustomersResponse{Items: items, Total: len(items)}, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.TariffID != nil {
		if _, err := s.TariffRepo.Get(ctx, *req.TariffID); err != nil {
			return nil, err
		}
		c.TariffID = req.TariffID
	}
	if req.RouteID != nil {
		if _, err := s.RouteRepo.Get(ctx, *req.RouteID); err != nil {
			return nil, err
		}
		c.RouteID = req.RouteID
	}
	c.UpdatedBy = types.GetUserID(ctx)

	updated, err := s.CustomerRepo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: updated}, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := s.CustomerRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.CustomerRepo.Delete(ctx, id)
}
