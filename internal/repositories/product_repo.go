package repositories

import (
	"tillslip/internal/models"
)

// ProductRepository defines the interface for product data access. Every
// method is scoped to the owning user; products of other users are never
// visible regardless of the ids requested.
type ProductRepository interface {
	GetAllForUser(userID string) ([]models.Product, error)
	GetByID(userID, id string) (*models.Product, error)
	GetByIDs(userID string, ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(userID, id string) error
}
