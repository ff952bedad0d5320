package models

import "gorm.io/gorm"

// Client is a named buyer scoped to one user. The composite unique index
// on (user_id, name) backs the atomic get-or-create in the client
// repository, so the same name never resolves to two rows for one user.
type Client struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_clients_user_name"`
	Name       string `json:"name" gorm:"type:varchar(200);uniqueIndex:idx_clients_user_name" validate:"required,max=200"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
