package repositories

import (
	"context"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order and its lines.
// Queries hydrate orders with their lines and each line's product in one
// preloaded read, so readers always see a consistent set.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx. Used by the service
// layer to issue multi-statement writes inside one transaction.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// All returns every order with nested lines and products, newest first.
// The id tie-break keeps the ordering deterministic when two orders share
// a creation timestamp.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderProducts.Product").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// FindByID returns one order with nested lines and products.
// Returns gorm.ErrRecordNotFound when no order with that id exists.
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderProducts.Product").
		First(&order, id).Error
	return order, err
}

// Exists reports whether an order with the given id is present.
func (r *OrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new order row. The generated id and creation timestamp
// are written back into order.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	return r.db.WithContext(ctx).Create(order).Error
}

// UpdateDescription overwrites the description of an existing order without
// touching id or created_at.
func (r *OrderRepository) UpdateDescription(ctx context.Context, id uint, description string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("order_description", description).Error
}

// CreateLines bulk-inserts a batch of order lines. An empty batch is a no-op.
func (r *OrderRepository) CreateLines(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	defer metrics.ObserveDBQuery("insert", time.Now())

	return r.db.WithContext(ctx).Create(&lines).Error
}

// DeleteLines removes all lines belonging to an order.
func (r *OrderRepository) DeleteLines(ctx context.Context, orderID uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderLine{}).Error
}

// Delete removes the order row itself. Lines must be deleted first;
// the service wraps both in one transaction.
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	return r.db.WithContext(ctx).Delete(&models.Order{}, id).Error
}
