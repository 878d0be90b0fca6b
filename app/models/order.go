package models

import "time"

// Order is a booking record with a description and a set of associated
// products. ID and CreatedAt are assigned at creation and never modified.
type Order struct {
	ID               uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderDescription string      `gorm:"size:100;not null" json:"orderDescription"`
	CreatedAt        time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	OrderProducts    []OrderLine `gorm:"foreignKey:OrderID" json:"orderProducts"`
}

// OrderLine is one row of the order↔product join table. Duplicate product
// references within an order are allowed; each is a distinct row. The
// association is modelled with explicit foreign-key columns rather than a
// many-to-many declaration so the repositories control every write.
type OrderLine struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint     `gorm:"not null;index" json:"orderId"`
	ProductID uint     `gorm:"not null;index" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName keeps the join table name used by the frontend's API contract.
func (OrderLine) TableName() string { return "order_product_map" }
