package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tillslip/internal/apperr"
	"tillslip/internal/models"
	"tillslip/internal/pricing"
	"tillslip/internal/repositories"
	"tillslip/pkg/pdf"
	"tillslip/pkg/rabbitmq"
)

// DefaultSellerName is printed on receipts when the request names no seller.
const DefaultSellerName = "My Business"

// GenerateItem is one line of a receipt-generation request. Decimal
// fields accept JSON numbers or numeric strings; anything non-numeric
// fails parsing and is reported as a validation error.
type GenerateItem struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
}

// GenerateRequest is the receipt-generation payload. An empty item list
// is valid: the receipt is still created, with all-zero totals.
type GenerateRequest struct {
	Items      []GenerateItem `json:"items" validate:"dive"`
	ClientName string         `json:"client_name" validate:"omitempty,max=200"`
	SellerName string         `json:"seller_name" validate:"omitempty,max=200"`
}

// ReceiptService orchestrates receipt generation: validate the request,
// resolve the client, compute pricing, persist the receipt atomically,
// publish a creation event and render the PDF.
type ReceiptService struct {
	receiptRepo repositories.ReceiptRepository
	clientRepo  repositories.ClientRepository
	mqClient    *rabbitmq.Client
}

// NewReceiptService creates a new ReceiptService. mqClient may be nil,
// in which case event publication is skipped.
func NewReceiptService(receiptRepo repositories.ReceiptRepository, clientRepo repositories.ClientRepository, mqClient *rabbitmq.Client) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		clientRepo:  clientRepo,
		mqClient:    mqClient,
	}
}

// Generate runs one receipt generation to completion and returns the
// persisted receipt together with the rendered PDF bytes. A storage
// failure leaves no receipt behind and is reported once, unretried.
func (s *ReceiptService) Generate(userID string, req GenerateRequest) (*models.Receipt, []byte, error) {
	items := make([]pricing.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, pricing.LineItem{
			Name:            it.Name,
			Price:           it.Price,
			Quantity:        it.Quantity,
			DiscountPercent: it.Discount,
			TaxPercent:      it.Tax,
		})
	}

	lines, totals, err := pricing.Compute(items)
	if err != nil {
		return nil, nil, err
	}

	var client *models.Client
	if req.ClientName != "" {
		client, err = s.clientRepo.GetOrCreate(userID, req.ClientName)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: resolve client: %v", apperr.ErrPersistence, err)
		}
	}

	sellerName := req.SellerName
	if sellerName == "" {
		sellerName = DefaultSellerName
	}

	receipt := &models.Receipt{
		ID:         uuid.New().String(),
		UserID:     userID,
		SellerName: sellerName,
		CreatedAt:  time.Now().UTC(),
	}
	if client != nil {
		receipt.ClientID = &client.ID
		receipt.Client = client
	}
	for _, line := range lines {
		receipt.Items = append(receipt.Items, models.ReceiptItem{
			ID:              uuid.New().String(),
			ProductName:     line.Item.Name,
			Quantity:        line.Item.Quantity,
			Price:           line.Item.Price,
			DiscountPercent: line.Item.DiscountPercent,
			TaxPercent:      line.Item.TaxPercent,
		})
	}

	if err := s.receiptRepo.Create(receipt); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	s.publishCreated(receipt, totals)

	doc, err := pdf.RenderReceipt(*receipt, lines, totals)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render receipt %s: %w", receipt.ID, err)
	}

	return receipt, doc, nil
}

// GetReceipt retrieves one of the user's receipts with its items.
func (s *ReceiptService) GetReceipt(userID, id string) (*models.Receipt, error) {
	return s.receiptRepo.GetByID(userID, id)
}

// GetAllReceipts retrieves the user's receipt history.
func (s *ReceiptService) GetAllReceipts(userID string) ([]models.Receipt, error) {
	return s.receiptRepo.GetAllForUser(userID)
}

// publishCreated fires a receipt.created event. Publication is
// best-effort: the receipt is already committed, so failures are logged
// and never surfaced to the caller.
func (s *ReceiptService) publishCreated(receipt *models.Receipt, totals pricing.Totals) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"receipt_id":  receipt.ID,
		"user_id":     receipt.UserID,
		"seller_name": receipt.SellerName,
		"item_count":  len(receipt.Items),
		"grand_total": pricing.Amount(totals.GrandTotal),
		"created_at":  receipt.CreatedAt.Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal receipt event to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish("receipt", "receipt.created", body); err != nil {
		log.Printf("Warning: Failed to publish receipt created event for receipt %s: %v", receipt.ID, err)
		return
	}
	log.Printf("Successfully published receipt created event for receipt %s", receipt.ID)
}
