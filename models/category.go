package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeNameList is a JSONB array of attribute names a category declares
// filterable (e.g. ["color", "size"]). Products under the category may carry
// any subset of these in their attribute maps.
type AttributeNameList []string

func (a *AttributeNameList) Scan(value interface{}) error {
	if value == nil {
		*a = make(AttributeNameList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AttributeNameList")
	}
	return json.Unmarshal(bytes, a)
}

func (a AttributeNameList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a)
}

// Category represents a storefront category. Categories form a tree through
// ParentID; the designated root category's Filterable list applies to every
// category in the store.
type Category struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string            `json:"name" gorm:"not null"`
	Description string            `json:"description"`
	Status      string            `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	ParentID    *uuid.UUID        `json:"parent_id" gorm:"type:uuid;index"`
	SortOrder   int               `json:"sort_order" gorm:"default:0"`
	Filterable  AttributeNameList `json:"filterable" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships (GORM will handle these automatically)
	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7 if not set
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}
