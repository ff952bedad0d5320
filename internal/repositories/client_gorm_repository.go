package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tillslip/internal/apperr"
	"tillslip/internal/models"
)

// GORMClientRepository is a GORM implementation of ClientRepository.
type GORMClientRepository struct {
	db *gorm.DB
}

// NewGORMClientRepository creates a new instance of GORMClientRepository.
func NewGORMClientRepository(db *gorm.DB) *GORMClientRepository {
	return &GORMClientRepository{
		db: db,
	}
}

// GetOrCreate returns the user's client with that exact name, creating it
// first if needed. The insert runs ON CONFLICT DO NOTHING against the
// (user_id, name) unique index, so concurrent callers resolve to the same
// row instead of racing a read-then-write.
func (r *GORMClientRepository) GetOrCreate(userID, name string) (*models.Client, error) {
	client := models.Client{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoNothing: true,
		}).Create(&client).Error; err != nil {
			return err
		}
		// Read back whichever row won: ours or a pre-existing one. A fresh
		// destination keeps GORM from filtering on the freshly minted id.
		client = models.Client{}
		return tx.First(&client, "user_id = ? AND name = ?", userID, name).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get or create client %q: %w", name, err)
	}
	return &client, nil
}

// GetByID retrieves a client by its ID, scoped to the owner.
func (r *GORMClientRepository) GetByID(userID, id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client %s: %w", id, err)
	}
	return &client, nil
}
