package repositories

import (
	"tillslip/internal/models"
)

// ReceiptRepository defines the interface for receipt data access.
// Receipts are write-once: there is deliberately no update method.
type ReceiptRepository interface {
	Create(receipt *models.Receipt) error
	GetByID(userID, id string) (*models.Receipt, error)
	GetAllForUser(userID string) ([]models.Receipt, error)
}
