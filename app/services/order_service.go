package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"gorm.io/gorm"
)

// maxDescriptionLen mirrors the column size of orders.order_description.
const maxDescriptionLen = 100

// OrderService implements CRUD over orders while keeping the join table
// consistent with each order's product selection. Every multi-statement
// write runs inside a single transaction so concurrent readers never
// observe an order with a partial set of lines.
type OrderService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:     db,
		orders: repositories.NewOrderRepository(db),
	}
}

// List returns all orders, newest first, each hydrated with its lines and
// the product every line references.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	return orders, nil
}

// Get returns one hydrated order. Fails with ErrInvalidArgument for a
// non-positive id and ErrNotFound when no such order exists.
func (s *OrderService) Get(ctx context.Context, id uint) (models.Order, error) {
	if id == 0 {
		return models.Order{}, fmt.Errorf("%w: id must be a positive integer", ErrInvalidArgument)
	}

	order, err := s.orders.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: get %d: %w", id, err)
	}
	return order, nil
}

// Create inserts a new order and one line per entry in productIDs
// (duplicates preserved) as a single unit of work. On any failure the
// order does not remain partially persisted. The hydrated order is
// returned. An empty productIDs is valid: the order simply has no lines.
func (s *OrderService) Create(ctx context.Context, description string, productIDs []uint) (models.Order, error) {
	if err := validateDescription(description); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)

		order = models.Order{OrderDescription: strings.TrimSpace(description)}
		if err := repo.Create(ctx, &order); err != nil {
			return err
		}

		return repo.CreateLines(ctx, buildLines(order.ID, productIDs))
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: create: %w", err)
	}

	return s.Get(ctx, order.ID)
}

// Update applies a partial update to an existing order. A nil description
// or nil productIDs means "leave untouched"; a non-nil productIDs replaces
// every existing line with a fresh batch (an empty slice clears all
// products). Description and line replacement are one atomic unit.
func (s *OrderService) Update(ctx context.Context, id uint, description *string, productIDs *[]uint) (models.Order, error) {
	if id == 0 {
		return models.Order{}, fmt.Errorf("%w: id must be a positive integer", ErrInvalidArgument)
	}
	if description != nil {
		if err := validateDescription(*description); err != nil {
			return models.Order{}, err
		}
	}

	// The existence check runs inside the transaction so a concurrent
	// delete cannot slip between the check and the writes.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)

		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if description != nil {
			if err := repo.UpdateDescription(ctx, id, strings.TrimSpace(*description)); err != nil {
				return err
			}
		}

		if productIDs != nil {
			if err := repo.DeleteLines(ctx, id); err != nil {
				return err
			}
			if err := repo.CreateLines(ctx, buildLines(id, *productIDs)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("orders: update %d: %w", id, err)
	}

	return s.Get(ctx, id)
}

// Delete removes an order and all of its lines atomically.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: id must be a positive integer", ErrInvalidArgument)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)

		exists, err := repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := repo.DeleteLines(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("orders: delete %d: %w", id, err)
	}
	return nil
}

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(trimmed) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidArgument, maxDescriptionLen)
	}
	return nil
}

func buildLines(orderID uint, productIDs []uint) []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(productIDs))
	for _, pid := range productIDs {
		lines = append(lines, models.OrderLine{OrderID: orderID, ProductID: pid})
	}
	return lines
}
