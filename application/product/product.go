package product

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	productrepo "github.com/bobursolih/market-backend/repository/product"
	"github.com/bobursolih/market-backend/utils/errors"
	"github.com/bobursolih/market-backend/utils/logger"
)

// ProductApp is the read side of the catalog. Quantity changes go through the
// inventory, order and supplier flows, never through here.
type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return result, nil
}

// ListLowStock returns products at or below their alert threshold, the same
// set the queue worker alerts on.
func (s *productAppImpl) ListLowStock(ctx context.Context) ([]model.Product, error) {
	items, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		logger.Error("[ListLowStock] error productRepo.ListLowStock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}
