package models

import "gorm.io/gorm"

// User represents an authenticated tenant of the service. All products,
// clients and receipts are scoped to the owning user.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=3,max=150"`
	PINHash    string `json:"-" gorm:"column:pin_hash;type:varchar(255)"` // bcrypt hash of the 4-digit PIN, never the PIN itself
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	IsStaff    bool   `json:"is_staff" gorm:"default:false"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
