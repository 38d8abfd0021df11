package order

import (
	"errors"
	"fmt"

	"comanda-backend/internal/audit"
	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SplitItemRequest struct {
	MenuItemID   uint             `json:"menu_item_id"`
	Quantity     int              `json:"quantity"`
	Notes        string           `json:"notes"`
	MeatPoint    models.MeatPoint `json:"meat_point"`
	RemovedItems []string         `json:"removed_items"`
}

type SplitRequest struct {
	Splits [][]SplitItemRequest `json:"splits"`
}

var errInvalidSplitQuantity = errors.New("quantidade inválida na divisão")

// buildSplitter remonta a partição enviada pela tela de divisão sobre as
// linhas do pedido. Preço e nome vêm da linha do pedido, não do cardápio
// atual. Quantidades não positivas são rejeitadas antes de atribuir.
func buildSplitter(parent *models.Order, splits [][]SplitItemRequest) (*Splitter, error) {
	splitter := NewSplitter(parent, len(splits))
	for i, reqSplit := range splits {
		for _, reqItem := range reqSplit {
			if reqItem.Quantity <= 0 {
				return nil, errInvalidSplitQuantity
			}
			key := ItemKey{
				MenuItemID:   reqItem.MenuItemID,
				Notes:        reqItem.Notes,
				MeatPoint:    reqItem.MeatPoint,
				RemovedItems: reqItem.RemovedItems,
			}
			j := indexOf(parent.Items, key)
			if j < 0 {
				return nil, ErrIncompleteDistribution
			}
			splitter.Assign(i, parent.Items[j], reqItem.Quantity)
		}
	}
	return splitter, nil
}

// POST /api/orders/:id/split (caixa)
// Recebe a partição final montada na tela de divisão e materializa um
// pedido filho por pessoa. O pedido pai permanece como registro histórico.
func SplitOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SplitRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if len(body.Splits) < MinSplitPeople || len(body.Splits) > MaxSplitPeople {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("A conta pode ser dividida entre %d e %d pessoas", MinSplitPeople, MaxSplitPeople))
		}

		var parent models.Order
		if err := database.DB.Preload("Items").First(&parent, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}
		if parent.Status == models.OrderPaid || parent.Status == models.OrderCancelled {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Pedido já finalizado não pode ser dividido")
		}
		if parent.ParentOrderID != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Uma divisão não pode ser dividida novamente")
		}

		splitter, err := buildSplitter(&parent, body.Splits)
		if err != nil {
			if errors.Is(err, errInvalidSplitQuantity) {
				return fiber.NewError(fiber.StatusBadRequest, "Quantidade deve ser maior que zero")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Distribua todos os itens antes de dividir a conta")
		}

		children, err := splitter.Commit()
		if err != nil {
			if errors.Is(err, ErrIncompleteDistribution) {
				return fiber.NewError(fiber.StatusBadRequest, "Distribua todos os itens antes de dividir a conta")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível dividir a conta")
		}

		userID, userName := auth.CurrentUser(c)
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for i := range children {
				if err := tx.Create(&children[i]).Error; err != nil {
					return err
				}
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "order",
				EntityID:    parent.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Conta da mesa %s dividida entre %d pessoas", parent.TableNumber, len(children)),
				After:       fiber.Map{"children": len(children)},
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível dividir a conta")
		}

		return c.Status(fiber.StatusCreated).JSON(children)
	}
}
