package db

import (
	"mall/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed は商品が1件も無いときだけサンプルカタログを投入する。
func Seed(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []model.Product{
		{Name: "iPhone 14 Pro", Category: "Electronics", Price: price("999.99"), Description: "Latest Apple smartphone with A16 chip", ImageURL: "📱", Stock: 50},
		{Name: "MacBook Pro 16\"", Category: "Electronics", Price: price("2499.99"), Description: "Powerful laptop for professionals", ImageURL: "💻", Stock: 30},
		{Name: "AirPods Pro", Category: "Electronics", Price: price("249.99"), Description: "Wireless earbuds with active noise cancellation", ImageURL: "🎧", Stock: 100},
		{Name: "Samsung 4K TV", Category: "Electronics", Price: price("799.99"), Description: "55-inch smart TV with stunning display", ImageURL: "📺", Stock: 25},
		{Name: "Nike Air Max", Category: "Fashion", Price: price("129.99"), Description: "Comfortable running shoes", ImageURL: "👟", Stock: 75},
		{Name: "Levi's Jeans", Category: "Fashion", Price: price("69.99"), Description: "Classic denim jeans", ImageURL: "👖", Stock: 120},
		{Name: "Leather Jacket", Category: "Fashion", Price: price("199.99"), Description: "Premium leather jacket", ImageURL: "🧥", Stock: 40},
		{Name: "Designer Watch", Category: "Fashion", Price: price("299.99"), Description: "Elegant wristwatch", ImageURL: "⌚", Stock: 60},
		{Name: "Coffee Maker", Category: "Home", Price: price("89.99"), Description: "Automatic coffee machine", ImageURL: "☕", Stock: 80},
		{Name: "Blender", Category: "Home", Price: price("59.99"), Description: "High-speed blender for smoothies", ImageURL: "🥤", Stock: 90},
		{Name: "Air Purifier", Category: "Home", Price: price("179.99"), Description: "HEPA filter air purifier", ImageURL: "💨", Stock: 45},
		{Name: "Robot Vacuum", Category: "Home", Price: price("349.99"), Description: "Smart automated vacuum cleaner", ImageURL: "🤖", Stock: 35},
		{Name: "Gaming Mouse", Category: "Gaming", Price: price("79.99"), Description: "RGB gaming mouse with high DPI", ImageURL: "🖱️", Stock: 150},
		{Name: "Mechanical Keyboard", Category: "Gaming", Price: price("129.99"), Description: "RGB mechanical gaming keyboard", ImageURL: "⌨️", Stock: 100},
		{Name: "Gaming Headset", Category: "Gaming", Price: price("99.99"), Description: "7.1 surround sound headset", ImageURL: "🎮", Stock: 85},
	}

	return gormDB.Create(&products).Error
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
