package initializers

import (
	"log"

	"github.com/shopcart/shop-api/models"
	"github.com/shopspring/decimal"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Category{}, &models.Product{}, &models.Cart{}, &models.CartItem{})
	log.Println("Database synced successfully.")

	seedCatalog()
}

// seedCatalog loads the demo catalog once; reruns are no-ops.
func seedCatalog() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{ID: "11111111-1111-1111-1111-111111111111", Name: "Electronics", Description: "Electronic devices and accessories"},
		{ID: "22222222-2222-2222-2222-222222222222", Name: "Clothing", Description: "Apparel and fashion items"},
		{ID: "33333333-3333-3333-3333-333333333333", Name: "Books", Description: "Books and educational materials"},
		{ID: "44444444-4444-4444-4444-444444444444", Name: "Home & Garden", Description: "Home improvement and garden supplies"},
		{ID: "55555555-5555-5555-5555-555555555555", Name: "Games", Description: "Video Games"},
	}
	if err := DB.Create(&categories).Error; err != nil {
		log.Println("Failed to seed categories:", err)
		return
	}

	products := []models.Product{
		{
			ID:          "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
			Name:        "Smartphone",
			Description: "Latest model smartphone with advanced features",
			Price:       decimal.NewFromFloat(699.99),
			Stock:       50,
			CategoryID:  "11111111-1111-1111-1111-111111111111",
		},
		{
			ID:          "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
			Name:        "Jeans",
			Description: "Comfortable and stylish denim jeans",
			Price:       decimal.NewFromFloat(49.99),
			Stock:       100,
			CategoryID:  "22222222-2222-2222-2222-222222222222",
		},
		{
			ID:          "cccccccc-cccc-cccc-cccc-cccccccccccc",
			Name:        "Science Fiction Novel",
			Description: "A thrilling science fiction novel set in the future",
			Price:       decimal.NewFromFloat(19.99),
			Stock:       200,
			CategoryID:  "33333333-3333-3333-3333-333333333333",
		},
		{
			ID:          "dddddddd-dddd-dddd-dddd-dddddddddddd",
			Name:        "Garden Tools Set",
			Description: "Complete set of garden tools for all your gardening needs",
			Price:       decimal.NewFromFloat(89.99),
			Stock:       75,
			CategoryID:  "44444444-4444-4444-4444-444444444444",
		},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Println("Failed to seed products:", err)
		return
	}

	log.Println("Catalog seeded successfully.")
}
