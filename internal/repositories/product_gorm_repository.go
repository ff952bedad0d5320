package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tillslip/internal/apperr"
	"tillslip/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAllForUser retrieves all products owned by the given user.
func (r *GORMProductRepository) GetAllForUser(userID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for user: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, scoped to the owner. A
// foreign product id behaves exactly like a missing one.
func (r *GORMProductRepository) GetByID(userID, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// GetByIDs retrieves the subset of the user's products matching the given
// ids, in no particular order.
func (r *GORMProductRepository) GetByIDs(userID string, ids []string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.Find(&products, "user_id = ? AND id IN ?", userID, ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by ids: %w", err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product owned by product.UserID.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND user_id = ?", product.ID, product.UserID).
		Select("Name", "Description", "Quantity", "Price", "DiscountPercent", "TaxPercent").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes the user's product. Deleting a missing or foreign
// product is a silent no-op, so the operation is idempotent.
func (r *GORMProductRepository) Delete(userID, id string) error {
	res := r.db.Delete(&models.Product{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	return nil
}
