package register

import (
	"errors"
	"fmt"
	"time"

	"comanda-backend/internal/audit"
	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OpenRegisterRequest struct {
	InitialAmount decimal.Decimal `json:"initial_amount"`
	Notes         string          `json:"notes"`
}

type CloseRegisterRequest struct {
	FinalAmount decimal.Decimal `json:"final_amount"`
	Notes       string          `json:"notes"`
}

// Difference - sobra (positiva) ou falta (negativa) de dinheiro no
// fechamento: contado menos o esperado (inicial + vendas em dinheiro).
func Difference(initial, cashSales, final decimal.Decimal) decimal.Decimal {
	return final.Sub(initial.Add(cashSales))
}

// GET /api/cash-registers/current
func CurrentRegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reg models.CashRegister
		if err := database.DB.Where("status = ?", models.RegisterOpen).First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(nil)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao verificar caixa atual")
		}
		return c.JSON(reg)
	}
}

// POST /api/cash-registers/open
func OpenRegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenRegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.InitialAmount.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Valor inicial não pode ser negativo")
		}

		// checagem amigável; sob corrida o índice único parcial do banco
		// rejeita a segunda abertura
		var count int64
		if err := database.DB.Model(&models.CashRegister{}).
			Where("status = ?", models.RegisterOpen).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao verificar caixa atual")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Já existe um caixa aberto")
		}

		userID, userName := auth.CurrentUser(c)
		reg := models.CashRegister{
			OpenedAt:        time.Now(),
			OpenedBy:        userID,
			InitialAmount:   body.InitialAmount,
			Status:          models.RegisterOpen,
			CashSales:       decimal.Zero,
			CardSales:       decimal.Zero,
			PixSales:        decimal.Zero,
			MealTicketSales: decimal.Zero,
			Notes:           body.Notes,
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&reg).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "cash_register",
				EntityID:    fmt.Sprint(reg.ID),
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Caixa aberto com R$ %s", reg.InitialAmount.StringFixed(2)),
				After:       reg,
			})
		})
		if err != nil {
			// violação do índice parcial: outro terminal abriu antes
			return fiber.NewError(fiber.StatusBadRequest, "Já existe um caixa aberto")
		}

		return c.Status(fiber.StatusCreated).JSON(reg)
	}
}

// POST /api/cash-registers/close
func CloseRegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CloseRegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var reg models.CashRegister
		if err := database.DB.Where("status = ?", models.RegisterOpen).First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Não há caixa aberto")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao verificar caixa atual")
		}

		now := time.Now()
		diff := Difference(reg.InitialAmount, reg.CashSales, body.FinalAmount)

		userID, userName := auth.CurrentUser(c)
		before := reg

		reg.Status = models.RegisterClosed
		reg.ClosedAt = &now
		reg.ClosedBy = &userID
		reg.FinalAmount = &body.FinalAmount
		reg.Difference = &diff
		if body.Notes != "" {
			reg.Notes = body.Notes
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.CashRegister{}).Where("id = ?", reg.ID).Updates(map[string]interface{}{
				"status":       reg.Status,
				"closed_at":    reg.ClosedAt,
				"closed_by":    reg.ClosedBy,
				"final_amount": reg.FinalAmount,
				"difference":   reg.Difference,
				"notes":        reg.Notes,
			}).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "cash_register",
				EntityID:    fmt.Sprint(reg.ID),
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Caixa fechado: diferença de R$ %s", diff.StringFixed(2)),
				Before:      before,
				After:       reg,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível fechar o caixa")
		}

		return c.JSON(reg)
	}
}

// GET /api/cash-registers?from=2026-01-01&to=2026-01-31
func ListRegistersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.CashRegister{})

		if fromStr := c.Query("from"); fromStr != "" {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data 'from' inválida")
			}
			dbq = dbq.Where("opened_at >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data 'to' inválida")
			}
			dbq = dbq.Where("opened_at < ?", to.AddDate(0, 0, 1))
		}

		var regs []models.CashRegister
		if err := dbq.Order("opened_at desc").Find(&regs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os caixas")
		}

		return c.JSON(regs)
	}
}
