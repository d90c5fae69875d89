package models

// Product is a catalog entry. The catalog is managed outside this system; the
// ordering flow only ever reads active rows.
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(255)"`
	Price       float64 `json:"price"`
	Description string  `json:"description" gorm:"type:varchar(512)"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}

// FallbackProducts is the built-in catalog served when the product store is
// unreachable, so the ordering page stays usable in a degraded mode.
func FallbackProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop Dell XPS 13", Price: 25000000, Description: "High-performance laptop with Intel Core i7, 16GB RAM, 512GB SSD", IsActive: true},
		{ID: 2, Name: "iPhone 15 Pro", Price: 30000000, Description: "Latest iPhone with A17 Pro chip, 256GB storage, titanium design", IsActive: true},
		{ID: 3, Name: "Samsung Galaxy S24", Price: 22000000, Description: "Flagship Android phone with Snapdragon 8 Gen 3, 12GB RAM", IsActive: true},
		{ID: 4, Name: "MacBook Air M3", Price: 35000000, Description: "Ultra-thin laptop with M3 chip, 16GB RAM, stunning Retina display", IsActive: true},
		{ID: 5, Name: "iPad Pro 12.9\"", Price: 28000000, Description: "Professional tablet with M2 chip, 256GB storage, ProMotion display", IsActive: true},
		{ID: 6, Name: "Sony WH-1000XM5", Price: 8000000, Description: "Premium noise-cancelling wireless headphones with exceptional audio", IsActive: true},
		{ID: 7, Name: "Dell UltraSharp Monitor", Price: 12000000, Description: "27-inch 4K monitor with USB-C connectivity and excellent color accuracy", IsActive: true},
		{ID: 8, Name: "Logitech MX Master 3S", Price: 2500000, Description: "Advanced wireless mouse with ergonomic design and precision tracking", IsActive: true},
	}
}
