package customer

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	customerrepo "github.com/bobursolih/market-backend/repository/customer"
	"github.com/bobursolih/market-backend/utils/errors"
	"github.com/bobursolih/market-backend/utils/logger"
)

// CustomerApp manages customer records. Customers never log in here, the
// storefront service creates and acts for them through internal endpoints.
type CustomerApp interface {
	CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
	GetCustomer(ctx context.Context, id uint64) (*model.Customer, error)
	ListCustomers(ctx context.Context, page, perPage int) (*model.CustomerListResponse, error)
}

type customerAppImpl struct {
	customerRepo customerrepo.CustomerRepository
}

func NewCustomerApp(customerRepo customerrepo.CustomerRepository) CustomerApp {
	return &customerAppImpl{customerRepo: customerRepo}
}

func (s *customerAppImpl) CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	existing, err := s.customerRepo.GetCustomerByPhone(ctx, req.Phone)
	if err != nil && err != sql.ErrNoRows {
		logger.Error("[CreateCustomer] get by phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	c := &model.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	id, err := s.customerRepo.Insert(ctx, c)
	if err != nil {
		logger.Error("[CreateCustomer] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.GetCustomer(ctx, id)
}

func (s *customerAppImpl) GetCustomer(ctx context.Context, id uint64) (*model.Customer, error) {
	c, err := s.customerRepo.GetCustomer(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[GetCustomer] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *customerAppImpl) ListCustomers(ctx context.Context, page, perPage int) (*model.CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	customers, total, err := s.customerRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListCustomers] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.CustomerListResponse{Items: customers, TotalCount: total, Page: page, PerPage: perPage}, nil
}
