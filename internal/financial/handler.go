package financial

import (
	"strings"
	"time"

	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Type           models.TransactionType `json:"type"`
	Description    string                 `json:"description"`
	Amount         decimal.Decimal        `json:"amount"`
	DueDate        string                 `json:"due_date"`
	Category       string                 `json:"category"`
	DocumentNumber string                 `json:"document_number"`
	Notes          string                 `json:"notes"`
}

type PayTransactionRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	PaymentDate   *string              `json:"payment_date"`
}

// GET /api/financial/transactions?type=payable&status=pending
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.FinancialTransaction{})

		if t := c.Query("type"); t != "" {
			dbq = dbq.Where("type = ?", t)
		}
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var transactions []models.FinancialTransaction
		if err := dbq.Order("due_date asc").Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os lançamentos")
		}
		return c.JSON(transactions)
	}
}

// POST /api/financial/transactions
func CreateTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.Type != models.TransactionPayable && body.Type != models.TransactionReceivable {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo deve ser 'payable' ou 'receivable'")
		}
		body.Description = strings.TrimSpace(body.Description)
		body.Category = strings.TrimSpace(body.Category)
		if body.Description == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Descrição e categoria são obrigatórias")
		}
		if body.Amount.IsNegative() || body.Amount.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "Valor deve ser maior que zero")
		}

		dueDate, err := time.Parse("2006-01-02", body.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de vencimento inválida, use 'YYYY-MM-DD'")
		}

		userID, _ := auth.CurrentUser(c)
		transaction := models.FinancialTransaction{
			Type:           body.Type,
			Description:    body.Description,
			Amount:         body.Amount,
			DueDate:        dueDate,
			Status:         models.TransactionPending,
			Category:       body.Category,
			DocumentNumber: strings.TrimSpace(body.DocumentNumber),
			Notes:          body.Notes,
			CreatedBy:      userID,
		}

		if err := database.DB.Create(&transaction).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o lançamento")
		}

		return c.Status(fiber.StatusCreated).JSON(transaction)
	}
}

// POST /api/financial/transactions/:id/pay
func PayTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PayTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if !models.ValidPaymentMethod(body.PaymentMethod) {
			return fiber.NewError(fiber.StatusBadRequest, "Forma de pagamento inválida")
		}

		var transaction models.FinancialTransaction
		if err := database.DB.First(&transaction, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lançamento não encontrado")
		}
		if transaction.Status != models.TransactionPending {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Lançamento já finalizado")
		}

		paymentDate := time.Now()
		if body.PaymentDate != nil && *body.PaymentDate != "" {
			parsed, err := time.Parse("2006-01-02", *body.PaymentDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data de pagamento inválida")
			}
			paymentDate = parsed
		}

		method := body.PaymentMethod
		if err := database.DB.Model(&transaction).Updates(map[string]interface{}{
			"status":         models.TransactionPaid,
			"payment_date":   paymentDate,
			"payment_method": method,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar o pagamento")
		}

		transaction.Status = models.TransactionPaid
		transaction.PaymentDate = &paymentDate
		transaction.PaymentMethod = &method
		return c.JSON(transaction)
	}
}

// DELETE /api/financial/transactions/:id - cancela, não apaga
func CancelTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var transaction models.FinancialTransaction
		if err := database.DB.First(&transaction, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lançamento não encontrado")
		}
		if transaction.Status != models.TransactionPending {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Lançamento já finalizado")
		}

		if err := database.DB.Model(&transaction).Update("status", models.TransactionCancelled).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cancelar o lançamento")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

type CreateCommissionRequest struct {
	UserID     uint            `json:"user_id"`
	OrderID    string          `json:"order_id"`
	Percentage decimal.Decimal `json:"percentage"`
}

// GET /api/financial/commissions?user_id=3&status=pending
func ListCommissionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Commission{})

		if userID := c.Query("user_id"); userID != "" {
			dbq = dbq.Where("user_id = ?", userID)
		}
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}

		var commissions []models.Commission
		if err := dbq.Order("created_at desc").Find(&commissions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as comissões")
		}
		return c.JSON(commissions)
	}
}

// POST /api/financial/commissions
// A comissão é calculada sobre o total do pedido pago.
func CreateCommissionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCommissionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if body.Percentage.IsNegative() || body.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			return fiber.NewError(fiber.StatusBadRequest, "Percentual deve estar entre 0 e 100")
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ?", body.OrderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}
		if order.Status != models.OrderPaid {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Comissão só pode ser lançada sobre pedido pago")
		}

		amount := order.Total.Mul(body.Percentage).Div(decimal.NewFromInt(100))
		commission := models.Commission{
			UserID:     body.UserID,
			OrderID:    order.ID,
			Amount:     amount,
			Percentage: body.Percentage,
			Status:     models.TransactionPending,
		}

		if err := database.DB.Create(&commission).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível lançar a comissão")
		}

		return c.Status(fiber.StatusCreated).JSON(commission)
	}
}
