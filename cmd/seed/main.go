package main

import (
	"fmt"
	"log"

	"github.com/Aurelle-Shop/aurelle-store-backend/config"
	"github.com/Aurelle-Shop/aurelle-store-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog: a root category carrying the storewide
// filterable attributes, a two-level tree under it, and products with sparse
// attribute maps and occasional sale prices.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("AURELLE STORE - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	db := config.StoreGorm
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing int64
	db.Model(&models.Category{}).Count(&existing)
	if existing > 0 {
		log.Fatalf("❌ Categories table is not empty (%d rows), refusing to seed", existing)
	}

	root := models.Category{
		Name:        "Shop All",
		Description: "Storefront root",
		Filterable:  models.AttributeNameList{"brand"},
	}
	if err := db.Create(&root).Error; err != nil {
		log.Fatalf("Failed to create root category: %v", err)
	}

	clothing := category(db, "Clothing", "Apparel and accessories", &root.ID, 1, "color", "size")
	tshirts := category(db, "T-Shirts", "Short-sleeve tees", &clothing.ID, 1, "fit")
	hoodies := category(db, "Hoodies", "Hooded sweatshirts", &clothing.ID, 2)
	home := category(db, "Home", "Homeware", &root.ID, 2, "material")

	type seedProduct struct {
		name      string
		category  uuid.UUID
		price     float64
		salePrice *float64
		attrs     models.AttributeMap
	}

	seedProducts := []seedProduct{
		{"Classic Tee Red", tshirts.ID, 25, nil, models.AttributeMap{"color": "Red", "size": "M", "fit": "Regular", "brand": "Aurelle"}},
		{"Classic Tee Blue", tshirts.ID, 25, nil, models.AttributeMap{"color": "Blue", "size": "L", "fit": "Regular", "brand": "Aurelle"}},
		{"Slim Tee Black", tshirts.ID, 29, price(19), models.AttributeMap{"color": "Black", "size": "S", "fit": "Slim"}},
		{"Heavy Hoodie Grey", hoodies.ID, 65, nil, models.AttributeMap{"color": "Grey", "size": "L", "brand": "Northloom"}},
		{"Zip Hoodie Navy", hoodies.ID, 72, price(54), models.AttributeMap{"color": "Navy", "size": "M"}},
		{"Linen Throw", home.ID, 45, nil, models.AttributeMap{"material": "Linen", "brand": "Aurelle"}},
		{"Wool Blanket", home.ID, 120, price(89), models.AttributeMap{"material": "Wool"}},
	}

	for _, sp := range seedProducts {
		product := models.Product{
			Name:        sp.name,
			Description: sp.name,
			Price:       sp.price,
			SalePrice:   sp.salePrice,
			CategoryID:  sp.category,
			Status:      "Active",
			Attributes:  sp.attrs,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", sp.name, err)
		}
	}
	log.Printf("✓ Seeded %d categories and %d products", 5, len(seedProducts))

	fmt.Println()
	fmt.Println("Add this to your .env so global attributes resolve:")
	fmt.Printf("ROOT_CATEGORY_ID=%s\n", root.ID)
}

func category(db *gorm.DB, name, description string, parentID *uuid.UUID, order int, filterable ...string) models.Category {
	cat := models.Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
		SortOrder:   order,
		Filterable:  models.AttributeNameList(filterable),
	}
	if err := db.Create(&cat).Error; err != nil {
		log.Fatalf("Failed to create category %q: %v", name, err)
	}
	return cat
}

func price(v float64) *float64 {
	return &v
}
