package services

import (
	"tillslip/internal/models"
	"tillslip/internal/pricing"
	"tillslip/internal/repositories"
)

// ProductService handles business logic related to a user's product
// catalog. Every operation is scoped to the calling user.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves the user's catalog.
func (s *ProductService) GetAllProducts(userID string) ([]models.Product, error) {
	return s.repo.GetAllForUser(userID)
}

// GetProductByID retrieves one of the user's products.
func (s *ProductService) GetProductByID(userID, id string) (*models.Product, error) {
	return s.repo.GetByID(userID, id)
}

// GetProductsByIDs resolves the user's products matching the given ids,
// projecting every field needed to prefill a receipt line. Ids belonging
// to other users are silently absent from the result.
func (s *ProductService) GetProductsByIDs(userID string, ids []string) ([]models.Product, error) {
	return s.repo.GetByIDs(userID, ids)
}

// CreateProduct creates a new product owned by the user.
func (s *ProductService) CreateProduct(userID string, product *models.Product) error {
	if err := validateProductNumbers(product); err != nil {
		return err
	}
	product.UserID = userID
	return s.repo.Create(product)
}

// UpdateProduct updates one of the user's products.
func (s *ProductService) UpdateProduct(userID string, product *models.Product) error {
	if err := validateProductNumbers(product); err != nil {
		return err
	}
	product.UserID = userID
	return s.repo.Update(product)
}

// DeleteProduct deletes one of the user's products. Deleting a missing or
// foreign product is a no-op, so repeating the call yields the same state.
func (s *ProductService) DeleteProduct(userID, id string) error {
	return s.repo.Delete(userID, id)
}

// validateProductNumbers enforces the same numeric constraints on catalog
// entries as the pricing engine does on receipt lines.
func validateProductNumbers(product *models.Product) error {
	item := pricing.LineItem{
		Name:            product.Name,
		Price:           product.Price,
		Quantity:        product.Quantity,
		DiscountPercent: product.DiscountPercent,
		TaxPercent:      product.TaxPercent,
	}
	return item.Validate()
}
