package reservation

import (
	"strings"
	"time"

	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// reservationWindow - tempo de ocupação da mesa considerado por reserva.
const reservationWindow = 2 * time.Hour

// Conflicts - duas reservas da mesma mesa conflitam quando os horários
// distam menos que a janela de ocupação.
func Conflicts(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d < reservationWindow
}

type CreateTableRequest struct {
	Number string `json:"number"`
	Seats  int    `json:"seats"`
}

type UpdateTableRequest struct {
	Seats  *int  `json:"seats"`
	Active *bool `json:"active"`
}

// GET /api/tables
func ListTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tables []models.DiningTable
		if err := database.DB.Order("number asc").Find(&tables).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as mesas")
		}
		return c.JSON(tables)
	}
}

// POST /api/tables
func CreateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.Number = strings.TrimSpace(body.Number)
		if body.Number == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Número da mesa é obrigatório")
		}
		if body.Seats <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Mesa precisa de ao menos um lugar")
		}

		var existing models.DiningTable
		if err := database.DB.Where("number = ?", body.Number).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Já existe uma mesa com este número")
		}

		table := models.DiningTable{
			Number: body.Number,
			Seats:  body.Seats,
			Active: true,
		}
		if err := database.DB.Create(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar a mesa")
		}

		return c.Status(fiber.StatusCreated).JSON(table)
	}
}

// PUT /api/tables/:id
func UpdateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var table models.DiningTable
		if err := database.DB.First(&table, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mesa não encontrada")
		}

		var body UpdateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.Seats != nil {
			if *body.Seats <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Mesa precisa de ao menos um lugar")
			}
			table.Seats = *body.Seats
		}
		if body.Active != nil {
			table.Active = *body.Active
		}

		if err := database.DB.Save(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a mesa")
		}
		return c.JSON(table)
	}
}

type CreateReservationRequest struct {
	TableID       uint      `json:"table_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	PartySize     int       `json:"party_size"`
	ReservedFor   time.Time `json:"reserved_for"`
	Notes         string    `json:"notes"`
}

// GET /api/reservations?table_id=3&date=2026-08-28&status=scheduled
func ListReservationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.TableReservation{})

		if tableID := c.Query("table_id"); tableID != "" {
			dbq = dbq.Where("table_id = ?", tableID)
		}
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if dateStr := c.Query("date"); dateStr != "" {
			day, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data inválida, use 'YYYY-MM-DD'")
			}
			dbq = dbq.Where("reserved_for >= ? AND reserved_for < ?", day, day.AddDate(0, 0, 1))
		}

		var reservations []models.TableReservation
		if err := dbq.Order("reserved_for asc").Find(&reservations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as reservas")
		}
		return c.JSON(reservations)
	}
}

// POST /api/reservations
func CreateReservationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateReservationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.CustomerName = strings.TrimSpace(body.CustomerName)
		if body.CustomerName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome do cliente é obrigatório")
		}
		if body.PartySize <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Número de pessoas deve ser maior que zero")
		}
		if body.ReservedFor.IsZero() || body.ReservedFor.Before(time.Now()) {
			return fiber.NewError(fiber.StatusBadRequest, "Horário da reserva deve estar no futuro")
		}

		var table models.DiningTable
		if err := database.DB.First(&table, body.TableID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mesa não encontrada")
		}
		if !table.Active {
			return fiber.NewError(fiber.StatusBadRequest, "Mesa está desativada")
		}
		if body.PartySize > table.Seats {
			return fiber.NewError(fiber.StatusBadRequest, "Mesa não comporta este número de pessoas")
		}

		// reservas vivas da mesma mesa dentro da janela de ocupação
		var nearby []models.TableReservation
		if err := database.DB.
			Where("table_id = ? AND status IN ? AND reserved_for BETWEEN ? AND ?",
				table.ID,
				[]models.ReservationStatus{models.ReservationScheduled, models.ReservationSeated},
				body.ReservedFor.Add(-reservationWindow),
				body.ReservedFor.Add(reservationWindow)).
			Find(&nearby).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível verificar as reservas")
		}
		for _, other := range nearby {
			if Conflicts(body.ReservedFor, other.ReservedFor) {
				return fiber.NewError(fiber.StatusBadRequest, "Já existe uma reserva para esta mesa neste horário")
			}
		}

		userID, _ := auth.CurrentUser(c)
		reservation := models.TableReservation{
			TableID:       table.ID,
			CustomerName:  body.CustomerName,
			CustomerPhone: strings.TrimSpace(body.CustomerPhone),
			PartySize:     body.PartySize,
			ReservedFor:   body.ReservedFor,
			Status:        models.ReservationScheduled,
			Notes:         body.Notes,
			CreatedBy:     userID,
		}

		if err := database.DB.Create(&reservation).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar a reserva")
		}

		return c.Status(fiber.StatusCreated).JSON(reservation)
	}
}

// PUT /api/reservations/:id/status
func UpdateReservationStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status models.ReservationStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		switch body.Status {
		case models.ReservationScheduled, models.ReservationSeated, models.ReservationCompleted,
			models.ReservationCancelled, models.ReservationNoShow:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
		}

		var reservation models.TableReservation
		if err := database.DB.First(&reservation, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Reserva não encontrada")
		}

		if err := database.DB.Model(&reservation).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a reserva")
		}

		reservation.Status = body.Status
		return c.JSON(reservation)
	}
}
