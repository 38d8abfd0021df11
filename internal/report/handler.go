package report

import (
	"time"

	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SalesSummaryItem struct {
	Method models.PaymentMethod `json:"method"`
	Count  int64                `json:"count"`
	Total  decimal.Decimal      `json:"total"`
}

type SalesSummaryResponse struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	Items      []SalesSummaryItem `json:"items"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
	ServiceFee decimal.Decimal    `json:"service_fee"`
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	// padrão: o dia de hoje
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "Data 'from' inválida")
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fiber.NewError(fiber.StatusBadRequest, "Data 'to' inválida")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

// GET /api/reports/sales?from=2026-08-01&to=2026-08-31
// Vendas pagas agrupadas por forma de pagamento no período.
func SalesSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c)
		if err != nil {
			return err
		}

		type row struct {
			Method string          `gorm:"column:payment_method"`
			Count  int64           `gorm:"column:count"`
			Total  decimal.Decimal `gorm:"column:total"`
			Fees   decimal.Decimal `gorm:"column:fees"`
		}
		var rows []row

		if err := database.DB.Model(&models.Order{}).
			Select("payment_method, COUNT(*) as count, SUM(total) as total, SUM(service_fee) as fees").
			Where("status = ? AND updated_at >= ? AND updated_at < ?", models.OrderPaid, from, to).
			Group("payment_method").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível calcular o resumo")
		}

		resp := SalesSummaryResponse{
			From:       from.Format("2006-01-02"),
			To:         to.AddDate(0, 0, -1).Format("2006-01-02"),
			Items:      make([]SalesSummaryItem, 0, len(rows)),
			GrandTotal: decimal.Zero,
			ServiceFee: decimal.Zero,
		}

		for _, r := range rows {
			resp.Items = append(resp.Items, SalesSummaryItem{
				Method: models.PaymentMethod(r.Method),
				Count:  r.Count,
				Total:  r.Total,
			})
			resp.GrandTotal = resp.GrandTotal.Add(r.Total)
			resp.ServiceFee = resp.ServiceFee.Add(r.Fees)
		}

		return c.JSON(resp)
	}
}

// GET /api/reports/tables?from=...&to=...
// Faturamento por mesa no período, para o painel do gerente.
func TableSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c)
		if err != nil {
			return err
		}

		type row struct {
			TableNumber string          `gorm:"column:table_number" json:"table_number"`
			Orders      int64           `gorm:"column:orders" json:"orders"`
			Total       decimal.Decimal `gorm:"column:total" json:"total"`
		}
		var rows []row

		if err := database.DB.Model(&models.Order{}).
			Select("table_number, COUNT(*) as orders, SUM(total) as total").
			Where("status = ? AND updated_at >= ? AND updated_at < ?", models.OrderPaid, from, to).
			Group("table_number").
			Order("total desc").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível calcular o resumo")
		}

		return c.JSON(rows)
	}
}
