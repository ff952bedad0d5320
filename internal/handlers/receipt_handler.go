package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tillslip/internal/services"
)

// ReceiptHandler handles HTTP requests for receipt generation and the
// receipt history.
type ReceiptHandler struct {
	service  *services.ReceiptService
	validate *validator.Validate
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(service *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the receipt routes with the Fiber app.
func (h *ReceiptHandler) RegisterRoutes(router fiber.Router) {
	receiptRoutes := router.Group("/receipts")
	receiptRoutes.Post("/", h.HandleGenerateReceipt)
	receiptRoutes.Get("/", h.HandleGetReceipts)
	receiptRoutes.Get("/:id", h.HandleGetReceiptByID)
}

// HandleGenerateReceipt runs one receipt generation to completion and
// streams the rendered PDF back as an attachment. Failures return a
// structured JSON error instead.
func (h *ReceiptHandler) HandleGenerateReceipt(c *fiber.Ctx) error {
	var req services.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing receipt request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	receipt, doc, err := h.service.Generate(currentUserID(c), req)
	if err != nil {
		log.Printf("Error generating receipt: %v", err)
		return c.Status(statusForError(err)).JSON(errorBody("Could not generate receipt", err))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="receipt_%s.pdf"`, receipt.ID))
	return c.Status(fiber.StatusOK).Send(doc)
}

// HandleGetReceipts retrieves the caller's receipt history with items.
func (h *ReceiptHandler) HandleGetReceipts(c *fiber.Ctx) error {
	receipts, err := h.service.GetAllReceipts(currentUserID(c))
	if err != nil {
		log.Printf("Error getting receipts: %v", err)
		return c.Status(statusForError(err)).JSON(errorBody("Could not retrieve receipts", err))
	}
	return c.JSON(receipts)
}

// HandleGetReceiptByID retrieves one stored receipt of the caller.
func (h *ReceiptHandler) HandleGetReceiptByID(c *fiber.Ctx) error {
	receiptID := c.Params("id")
	receipt, err := h.service.GetReceipt(currentUserID(c), receiptID)
	if err != nil {
		log.Printf("Error getting receipt %s: %v", receiptID, err)
		return c.Status(statusForError(err)).JSON(errorBody(
			fmt.Sprintf("Could not retrieve receipt %s", receiptID), err))
	}
	return c.JSON(receipt)
}
