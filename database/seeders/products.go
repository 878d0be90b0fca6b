package seeders

import (
	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts the demo catalog with caller-assigned ids.
// Existing rows are left alone, so the seeder is safe to re-run.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{ID: 1, ProductName: "HP laptop", ProductDescription: "This is HP laptop"},
		{ID: 2, ProductName: "lenovo laptop", ProductDescription: "This is lenovo"},
		{ID: 3, ProductName: "Car", ProductDescription: "This is Car"},
		{ID: 4, ProductName: "Bike", ProductDescription: "This is Bike"},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
		return err
	}

	// The catalog cache may still hold a pre-seed snapshot.
	return services.InvalidateProductCache()
}
