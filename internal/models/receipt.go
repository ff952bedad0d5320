package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is an immutable record of a completed sale. The header and its
// items are written once, together, and never updated afterwards. Deleting
// a client leaves its receipts in place with a NULL client reference.
type Receipt struct {
	ID         string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string        `json:"user_id" gorm:"index;type:varchar(36)"`
	ClientID   *string       `json:"client_id" gorm:"type:varchar(36)"`
	Client     *Client       `json:"client,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	SellerName string        `json:"seller_name" gorm:"type:varchar(200)"`
	Items      []ReceiptItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time     `json:"created_at"`
}

// ReceiptItem snapshots one product line at the time of sale. The values
// are copies, not references, so later catalog edits never alter history.
type ReceiptItem struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ReceiptID       string          `json:"receipt_id" gorm:"index;type:varchar(36)"`
	ProductName     string          `json:"product_name" gorm:"type:varchar(200)"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	DiscountPercent decimal.Decimal `json:"discount_percent" gorm:"type:decimal(5,2)"`
	TaxPercent      decimal.Decimal `json:"tax_percent" gorm:"type:decimal(5,2)"`
}
