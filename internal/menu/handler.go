package menu

import (
	"strconv"
	"strings"

	"comanda-backend/internal/audit"
	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateMenuItemRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Category          string          `json:"category"`
	Image             string          `json:"image"`
	PrepTime          int             `json:"prep_time"`
	Allergens         []string        `json:"allergens"`
	HasMeatPoint      bool            `json:"has_meat_point"`
	CustomizableItems []string        `json:"customizable_items"`
}

type UpdateMenuItemRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	Category          *string          `json:"category"`
	Image             *string          `json:"image"`
	PrepTime          *int             `json:"prep_time"`
	Allergens         *[]string        `json:"allergens"`
	HasMeatPoint      *bool            `json:"has_meat_point"`
	CustomizableItems *[]string        `json:"customizable_items"`
}

func itemID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// GET /api/menu-items?category=Carnes (todos os painéis autenticados)
func ListMenuItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.MenuItem{})

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var items []models.MenuItem
		if err := dbq.Order("category asc, name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar o cardápio")
		}
		return c.JSON(items)
	}
}

// POST /api/admin/menu-items (admin)
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)

		if body.Name == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome e categoria são obrigatórios")
		}
		if body.Price.IsNegative() || body.Price.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "Preço deve ser maior que zero")
		}
		if body.PrepTime < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tempo de preparo inválido")
		}

		item := models.MenuItem{
			Name:              body.Name,
			Description:       strings.TrimSpace(body.Description),
			Price:             body.Price,
			Category:          body.Category,
			Image:             body.Image,
			PrepTime:          body.PrepTime,
			Allergens:         body.Allergens,
			HasMeatPoint:      body.HasMeatPoint,
			CustomizableItems: body.CustomizableItems,
		}

		userID, userName := auth.CurrentUser(c)
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "menu_item",
				EntityID:    itemID(item.ID),
				Action:      models.AuditActionCreate,
				Description: "Item do cardápio criado: " + item.Name,
				After:       item,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o item")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/admin/menu-items/:id
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item não encontrado")
		}
		before := item

		var body UpdateMenuItemRequest
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
		if body.Description != nil {
			item.Description = strings.TrimSpace(*body.Description)
		}
		if body.Price != nil {
			if body.Price.IsNegative() || body.Price.IsZero() {
				return fiber.NewError(fiber.StatusBadRequest, "Preço deve ser maior que zero")
			}
			item.Price = *body.Price
		}
		if body.Category != nil {
			category := strings.TrimSpace(*body.Category)
			if category == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Categoria não pode ser vazia")
			}
			item.Category = category
		}
		if body.Image != nil {
			item.Image = *body.Image
		}
		if body.PrepTime != nil {
			if *body.PrepTime < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Tempo de preparo inválido")
			}
			item.PrepTime = *body.PrepTime
		}
		if body.Allergens != nil {
			item.Allergens = *body.Allergens
		}
		if body.HasMeatPoint != nil {
			item.HasMeatPoint = *body.HasMeatPoint
		}
		if body.CustomizableItems != nil {
			item.CustomizableItems = *body.CustomizableItems
		}

		userID, userName := auth.CurrentUser(c)
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "menu_item",
				EntityID:    itemID(item.ID),
				Action:      models.AuditActionUpdate,
				Description: "Item do cardápio atualizado: " + item.Name,
				Before:      before,
				After:       item,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o item")
		}

		return c.JSON(item)
	}
}

// DELETE /api/admin/menu-items/:id
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item não encontrado")
		}

		userID, userName := auth.CurrentUser(c)
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&item).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "menu_item",
				EntityID:    itemID(item.ID),
				Action:      models.AuditActionDelete,
				Description: "Item do cardápio removido: " + item.Name,
				Before:      item,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível remover o item")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
