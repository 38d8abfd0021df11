package stock

import (
	"errors"
	"fmt"
	"strings"

	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("estoque insuficiente")

// NextQuantity aplica um movimento ao saldo atual. Saída maior que o
// saldo é rejeitada e o saldo não muda.
func NextQuantity(current decimal.Decimal, movement models.MovementType, qty decimal.Decimal) (decimal.Decimal, error) {
	switch movement {
	case models.MovementIn:
		return current.Add(qty), nil
	case models.MovementOut:
		next := current.Sub(qty)
		if next.IsNegative() {
			return current, ErrInsufficientStock
		}
		return next, nil
	}
	return current, fmt.Errorf("tipo de movimento inválido: %s", movement)
}

type CreateStockItemRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Supplier    string          `json:"supplier"`
}

type UpdateStockItemRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	Supplier    *string          `json:"supplier"`
}

// GET /api/stock/items?category=Carnes&low=true
func ListStockItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.StockItem{})

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}
		if c.Query("low") == "true" {
			dbq = dbq.Where("quantity <= min_quantity")
		}

		var items []models.StockItem
		if err := dbq.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar o estoque")
		}
		return c.JSON(items)
	}
}

// POST /api/stock/items
func CreateStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)
		body.Unit = strings.TrimSpace(body.Unit)
		if body.Name == "" || body.Category == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome, categoria e unidade são obrigatórios")
		}
		if body.MinQuantity.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Quantidade mínima não pode ser negativa")
		}

		item := models.StockItem{
			Name:        body.Name,
			Category:    body.Category,
			Unit:        body.Unit,
			Quantity:    decimal.Zero,
			MinQuantity: body.MinQuantity,
			Supplier:    strings.TrimSpace(body.Supplier),
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o insumo")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/stock/items/:id - cadastro apenas; o saldo só muda por movimento
func UpdateStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.StockItem
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Insumo não encontrado")
		}

		var body UpdateStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
			}
			item.Name = name
		}
		if body.Category != nil {
			item.Category = strings.TrimSpace(*body.Category)
		}
		if body.Unit != nil {
			item.Unit = strings.TrimSpace(*body.Unit)
		}
		if body.MinQuantity != nil {
			if body.MinQuantity.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade mínima não pode ser negativa")
			}
			item.MinQuantity = *body.MinQuantity
		}
		if body.Supplier != nil {
			item.Supplier = strings.TrimSpace(*body.Supplier)
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o insumo")
		}

		return c.JSON(item)
	}
}

type CreateMovementRequest struct {
	StockItemID uint                `json:"stock_item_id"`
	Type        models.MovementType `json:"type"`
	Quantity    decimal.Decimal     `json:"quantity"`
	UnitPrice   *decimal.Decimal    `json:"unit_price"`
	Supplier    string              `json:"supplier"`
	Notes       string              `json:"notes"`
}

// GET /api/stock/items/:id/movements
func ListMovementsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var movements []models.StockMovement
		if err := database.DB.Where("stock_item_id = ?", c.Params("id")).
			Order("created_at desc").Find(&movements).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os movimentos")
		}
		return c.JSON(movements)
	}
}

// POST /api/stock/movements - entrada ou saída; atualiza o saldo do insumo
// no mesmo commit
func CreateMovementHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMovementRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if body.Type != models.MovementIn && body.Type != models.MovementOut {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo deve ser 'in' ou 'out'")
		}
		if body.Quantity.IsNegative() || body.Quantity.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "Quantidade deve ser maior que zero")
		}
		if body.UnitPrice != nil && body.UnitPrice.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Preço unitário não pode ser negativo")
		}

		var item models.StockItem
		if err := database.DB.First(&item, body.StockItemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Insumo não encontrado")
		}

		next, err := NextQuantity(item.Quantity, body.Type, body.Quantity)
		if err != nil {
			if errors.Is(err, ErrInsufficientStock) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Estoque insuficiente para a saída")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Movimento inválido")
		}

		userID, _ := auth.CurrentUser(c)
		movement := models.StockMovement{
			StockItemID: item.ID,
			Type:        body.Type,
			Quantity:    body.Quantity,
			UnitPrice:   body.UnitPrice,
			Supplier:    strings.TrimSpace(body.Supplier),
			Notes:       body.Notes,
			CreatedBy:   userID,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
			return tx.Model(&models.StockItem{}).Where("id = ?", item.ID).
				Update("quantity", next).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar o movimento")
		}

		item.Quantity = next
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"movement": movement,
			"item":     item,
		})
	}
}
