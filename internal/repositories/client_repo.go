package repositories

import (
	"tillslip/internal/models"
)

// ClientRepository defines the interface for client data access. Clients
// are created on demand: GetOrCreate is the only write path.
type ClientRepository interface {
	GetOrCreate(userID, name string) (*models.Client, error)
	GetByID(userID, id string) (*models.Client, error)
}
