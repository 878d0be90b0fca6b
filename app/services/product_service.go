package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"gorm.io/gorm"
)

const (
	productCacheKey = "products:all"
	productCacheTTL = 5 * time.Minute
)

// ProductService exposes the read-only product catalog.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{products: repositories.NewProductRepository(db)}
}

// List returns the full catalog ordered by ascending id.
// Products are immutable after seeding, so the result is served through a
// TTL'd cache; a cold or unreachable cache falls through to the database.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if cache.Get(productCacheKey, &products) {
		return products, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}

	_ = cache.Set(productCacheKey, products, productCacheTTL)
	return products, nil
}

// InvalidateProductCache drops the cached catalog. Call it after anything
// that changes product rows outside the request path, such as seeding.
func InvalidateProductCache() error {
	return cache.Del(productCacheKey)
}
