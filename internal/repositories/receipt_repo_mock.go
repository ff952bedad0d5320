package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tillslip/internal/apperr"
	"tillslip/internal/models"
)

// MockReceiptRepository is an in-memory implementation of
// ReceiptRepository. FailCreate can be set to simulate a storage failure;
// a failed create leaves no trace, matching the transactional guarantee
// of the GORM implementation.
type MockReceiptRepository struct {
	receipts   map[string]models.Receipt
	mu         sync.RWMutex
	FailCreate error
}

// NewMockReceiptRepository creates a new instance of MockReceiptRepository.
func NewMockReceiptRepository() *MockReceiptRepository {
	return &MockReceiptRepository{
		receipts: make(map[string]models.Receipt),
	}
}

// Create stores the receipt with its items as one unit.
func (r *MockReceiptRepository) Create(receipt *models.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate != nil {
		return r.FailCreate
	}
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	for i := range receipt.Items {
		if receipt.Items[i].ID == "" {
			receipt.Items[i].ID = uuid.New().String()
		}
		receipt.Items[i].ReceiptID = receipt.ID
	}

	stored := *receipt
	stored.Items = append([]models.ReceiptItem(nil), receipt.Items...)
	r.receipts[receipt.ID] = stored
	return nil
}

// GetByID returns a receipt by its ID, scoped to the owner.
func (r *MockReceiptRepository) GetByID(userID, id string) (*models.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok := r.receipts[id]
	if !ok || receipt.UserID != userID {
		return nil, fmt.Errorf("receipt %s: %w", id, apperr.ErrNotFound)
	}
	out := receipt
	out.Items = append([]models.ReceiptItem(nil), receipt.Items...)
	return &out, nil
}

// GetAllForUser returns all receipts of the given user.
func (r *MockReceiptRepository) GetAllForUser(userID string) ([]models.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipts := make([]models.Receipt, 0, len(r.receipts))
	for _, receipt := range r.receipts {
		if receipt.UserID == userID {
			out := receipt
			out.Items = append([]models.ReceiptItem(nil), receipt.Items...)
			receipts = append(receipts, out)
		}
	}
	return receipts, nil
}
