package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tillslip/internal/apperr"
	"tillslip/internal/models"
)

// GORMReceiptRepository is a GORM implementation of ReceiptRepository.
type GORMReceiptRepository struct {
	db *gorm.DB
}

// NewGORMReceiptRepository creates a new instance of GORMReceiptRepository.
func NewGORMReceiptRepository(db *gorm.DB) *GORMReceiptRepository {
	return &GORMReceiptRepository{
		db: db,
	}
}

// Create writes the receipt header and all of its items as one logical
// unit. The transaction guarantees a partial item set is never observable
// by other callers: on any failure mid-write nothing is committed.
func (r *GORMReceiptRepository) Create(receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	for i := range receipt.Items {
		if receipt.Items[i].ID == "" {
			receipt.Items[i].ID = uuid.New().String()
		}
		receipt.Items[i].ReceiptID = receipt.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Client").Create(receipt).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}
	return nil
}

// GetByID retrieves a receipt with its items and client, scoped to the
// owner. A foreign receipt id behaves exactly like a missing one.
func (r *GORMReceiptRepository) GetByID(userID, id string) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.Preload("Items").Preload("Client").
		First(&receipt, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("receipt %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get receipt %s: %w", id, err)
	}
	return &receipt, nil
}

// GetAllForUser retrieves all receipts of the given user, newest first,
// with their items preloaded.
func (r *GORMReceiptRepository) GetAllForUser(userID string) ([]models.Receipt, error) {
	var receipts []models.Receipt
	err := r.db.Preload("Items").Preload("Client").
		Order("created_at DESC").
		Find(&receipts, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get receipts for user: %w", err)
	}
	return receipts, nil
}
