package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tillslip/internal/apperr"
	"tillslip/internal/models"
)

// MockClientRepository is an in-memory implementation of ClientRepository.
type MockClientRepository struct {
	clients map[string]models.Client // keyed by user_id + "\x00" + name
	mu      sync.Mutex
}

// NewMockClientRepository creates a new instance of MockClientRepository.
func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[string]models.Client),
	}
}

// GetOrCreate returns the user's client with that exact name, creating it
// if absent. The map and its lock stand in for the unique-index upsert of
// the GORM implementation.
func (r *MockClientRepository) GetOrCreate(userID, name string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userID + "\x00" + name
	if client, ok := r.clients[key]; ok {
		return &client, nil
	}
	client := models.Client{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
	}
	r.clients[key] = client
	return &client, nil
}

// GetByID returns a client by its ID, scoped to the owner.
func (r *MockClientRepository) GetByID(userID, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, client := range r.clients {
		if client.ID == id && client.UserID == userID {
			return &client, nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", id, apperr.ErrNotFound)
}
