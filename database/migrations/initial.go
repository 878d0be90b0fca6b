package migrations

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000001_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260101000002_create_order_product_map_table", &CreateOrderProductMapTable{})
}

// -------- 0001: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0002: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- 0003: order_product_map --------

type CreateOrderProductMapTable struct{}

func (m *CreateOrderProductMapTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderLine{})
}

func (m *CreateOrderProductMapTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_product_map")
}
