package models

// Product is a catalog item available for inclusion in orders.
// Rows are created by the seeder (with caller-assigned ids) or an
// administrative insert, and are immutable afterwards — no update or
// delete path exists for products.
type Product struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	ProductName        string `gorm:"size:100;not null" json:"productName"`
	ProductDescription string `gorm:"type:text" json:"productDescription"`
}
