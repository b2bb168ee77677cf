package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary"`
	Other   []MediaURL `json:"other,omitempty"`
}

// AttributeMap holds a product's filterable attributes as a sparse
// name -> value mapping (e.g. {"color": "Red", "size": "M"}). Products are
// not required to carry every attribute their category declares.
type AttributeMap map[string]string

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string       `json:"name" gorm:"not null;index"`
	Description string       `json:"description" gorm:"not null"`
	Price       float64      `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	SalePrice   *float64     `json:"sale_price,omitempty" gorm:"type:numeric(12,2);check:sale_price IS NULL OR sale_price >= 0"`
	CategoryID  uuid.UUID    `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	Category    *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Status      string       `json:"status" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	Attributes  AttributeMap `json:"attributes" gorm:"type:jsonb;not null;default:'{}';index:,type:gin"`
	Media       ProductMedia `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7. Version 7 ids are time-ordered,
// so sorting by id descending lists newest products first.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// EffectivePrice returns the sale price when one is set, otherwise the base
// price. Range filtering and the storefront price slider work on this value.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// AttributeMap methods
func (m *AttributeMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(AttributeMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AttributeMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m AttributeMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(m)
}

// ProductMedia methods
func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
