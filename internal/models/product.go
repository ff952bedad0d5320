package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a saved catalog entry belonging to one user. Price
// and percent fields are fixed-point decimals so repeated arithmetic never
// drifts the way binary floats do.
type Product struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description" validate:"omitempty,max=500"`
	Quantity        int             `json:"quantity" validate:"gte=0"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	DiscountPercent decimal.Decimal `json:"discount_percent" gorm:"type:decimal(5,2)"`
	TaxPercent      decimal.Decimal `json:"tax_percent" gorm:"type:decimal(5,2)"`
	gorm.Model                      // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
