package order

import (
	"errors"
	"fmt"
	"strings"

	"comanda-backend/internal/audit"
	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateOrderItemRequest struct {
	MenuItemID   uint             `json:"menu_item_id"`
	Quantity     int              `json:"quantity"`
	Notes        string           `json:"notes"`
	MeatPoint    models.MeatPoint `json:"meat_point"`
	RemovedItems []string         `json:"removed_items"`
}

type CreateOrderRequest struct {
	TableNumber string                   `json:"table_number"`
	Items       []CreateOrderItemRequest `json:"items"`
}

type ChangeStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type PaymentRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	PaidAmount    *decimal.Decimal     `json:"paid_amount"`
}

// POST /api/orders (garçom)
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.TableNumber = strings.TrimSpace(body.TableNumber)
		if body.TableNumber == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Número da mesa é obrigatório")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "O pedido precisa ter ao menos um item")
		}

		var items []models.OrderItem
		for _, reqItem := range body.Items {
			if reqItem.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade deve ser maior que zero")
			}

			var menuItem models.MenuItem
			if err := database.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Item do cardápio %d não encontrado", reqItem.MenuItemID))
			}

			if !models.ValidMeatPoint(reqItem.MeatPoint) {
				return fiber.NewError(fiber.StatusBadRequest, "Ponto da carne inválido")
			}
			if reqItem.MeatPoint != "" && !menuItem.HasMeatPoint {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("%s não aceita ponto da carne", menuItem.Name))
			}
			for _, removed := range reqItem.RemovedItems {
				if !contains(menuItem.CustomizableItems, removed) {
					return fiber.NewError(fiber.StatusBadRequest,
						fmt.Sprintf("%s não pode ser removido de %s", removed, menuItem.Name))
				}
			}

			items = MergeOrAppend(items, models.OrderItem{
				MenuItemID:   menuItem.ID,
				Name:         menuItem.Name,
				Price:        menuItem.Price,
				Quantity:     reqItem.Quantity,
				Notes:        strings.TrimSpace(reqItem.Notes),
				MeatPoint:    reqItem.MeatPoint,
				RemovedItems: reqItem.RemovedItems,
			})
		}

		o := models.Order{
			ID:          uuid.NewString(),
			TableNumber: body.TableNumber,
			Items:       items,
			Status:      models.OrderPending,
			ServiceFee:  decimal.Zero,
		}
		o.RecalcTotal()

		userID, userName := auth.CurrentUser(c)
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&o).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "order",
				EntityID:    o.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Pedido criado: mesa %s - R$ %s", o.TableNumber, o.Total.StringFixed(2)),
				After:       o,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o pedido")
		}

		return c.Status(fiber.StatusCreated).JSON(o)
	}
}

// GET /api/orders?status=pending&table=12
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Order{}).Preload("Items")

		if statusStr := c.Query("status"); statusStr != "" {
			status := models.OrderStatus(statusStr)
			if !ValidStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
			}
			dbq = dbq.Where("status = ?", status)
		}
		if table := c.Query("table"); table != "" {
			dbq = dbq.Where("table_number = ?", table)
		}
		if parent := c.Query("parent_order_id"); parent != "" {
			dbq = dbq.Where("parent_order_id = ?", parent)
		}

		var orders []models.Order
		if err := dbq.Order("created_at asc").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os pedidos")
		}

		return c.JSON(orders)
	}
}

// GET /api/orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var o models.Order
		if err := database.DB.Preload("Items").First(&o, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}
		return c.JSON(o)
	}
}

// PUT /api/orders/:id/status (cozinha avança, qualquer painel cancela)
func ChangeStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ChangeStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if !ValidStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
		}
		if body.Status == models.OrderPaid {
			// pagamento tem endpoint próprio, com forma de pagamento e caixa
			return fiber.NewError(fiber.StatusBadRequest, "Use o endpoint de pagamento")
		}

		var o models.Order
		if err := database.DB.Preload("Items").First(&o, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}

		before := o.Status
		if err := Transition(&o, body.Status); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Transição de status inválida: %s -> %s", before, body.Status))
		}

		userID, userName := auth.CurrentUser(c)
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Order{}).Where("id = ?", o.ID).
				Update("status", o.Status).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "order",
				EntityID:    o.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Status do pedido: %s -> %s", before, o.Status),
				Before:      fiber.Map{"status": before},
				After:       fiber.Map{"status": o.Status},
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o pedido")
		}

		return c.JSON(o)
	}
}

// POST /api/orders/:id/payment (caixa)
func PayOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if !models.ValidPaymentMethod(body.PaymentMethod) {
			return fiber.NewError(fiber.StatusBadRequest, "Forma de pagamento inválida")
		}

		var register models.CashRegister
		if err := database.DB.Where("status = ?", models.RegisterOpen).First(&register).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "É necessário abrir o caixa primeiro!")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível verificar o caixa")
		}

		var o models.Order
		if err := database.DB.Preload("Items").First(&o, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}

		before := o.Status
		if err := Transition(&o, models.OrderPaid); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Transição de status inválida: %s -> paid", before))
		}

		// valor devido inclui a taxa de serviço (zero fora de divisões)
		due := o.Total.Add(o.ServiceFee)

		method := body.PaymentMethod
		o.PaymentMethod = &method
		if body.PaidAmount != nil {
			if body.PaidAmount.LessThan(due) {
				return fiber.NewError(fiber.StatusBadRequest, "Valor pago insuficiente")
			}
			paid := *body.PaidAmount
			change := paid.Sub(due)
			o.PaidAmount = &paid
			o.Change = &change
		}

		userID, userName := auth.CurrentUser(c)
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{
				"status":         o.Status,
				"payment_method": o.PaymentMethod,
				"paid_amount":    o.PaidAmount,
				"change":         o.Change,
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", o.ID).Updates(updates).Error; err != nil {
				return err
			}

			// acumula a venda no caixa aberto, dentro do mesmo commit; o
			// incremento acontece no banco para não perder vendas
			// registradas em paralelo por outro terminal
			col := models.SalesColumn(method)
			if err := tx.Model(&models.CashRegister{}).Where("id = ?", register.ID).
				Update(col, gorm.Expr(col+" + ?", due)).Error; err != nil {
				return err
			}

			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "order",
				EntityID:    o.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Pedido pago: %s - R$ %s", method, due.StringFixed(2)),
				Before:      fiber.Map{"status": before},
				After:       fiber.Map{"status": o.Status, "payment_method": method},
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar o pagamento")
		}

		return c.JSON(o)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
