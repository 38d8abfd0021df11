package equipment

import (
	"strings"
	"time"

	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateEquipmentRequest struct {
	Name         string               `json:"name"`
	Type         models.EquipmentType `json:"type"`
	Model        string               `json:"model"`
	SerialNumber string               `json:"serial_number"`
	IPAddress    string               `json:"ip_address"`
	Port         string               `json:"port"`
	Notes        string               `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Name      *string                 `json:"name"`
	Status    *models.EquipmentStatus `json:"status"`
	IPAddress *string                 `json:"ip_address"`
	Port      *string                 `json:"port"`
	Notes     *string                 `json:"notes"`
}

// GET /api/equipment?status=active&type=printer
func ListEquipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Equipment{})

		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if t := c.Query("type"); t != "" {
			dbq = dbq.Where("type = ?", t)
		}

		var equipment []models.Equipment
		if err := dbq.Order("name asc").Find(&equipment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os equipamentos")
		}
		return c.JSON(equipment)
	}
}

// POST /api/equipment
func CreateEquipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEquipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome é obrigatório")
		}
		switch body.Type {
		case models.EquipmentPrinter, models.EquipmentPDV, models.EquipmentScale, models.EquipmentOther:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Tipo inválido (printer|pdv|scale|other)")
		}

		eq := models.Equipment{
			Name:         body.Name,
			Type:         body.Type,
			Model:        strings.TrimSpace(body.Model),
			SerialNumber: strings.TrimSpace(body.SerialNumber),
			IPAddress:    strings.TrimSpace(body.IPAddress),
			Port:         strings.TrimSpace(body.Port),
			Status:       models.EquipmentActive,
			Notes:        body.Notes,
		}

		if err := database.DB.Create(&eq).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o equipamento")
		}

		return c.Status(fiber.StatusCreated).JSON(eq)
	}
}

// PUT /api/equipment/:id
func UpdateEquipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var eq models.Equipment
		if err := database.DB.First(&eq, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Equipamento não encontrado")
		}

		var body UpdateEquipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
			}
			eq.Name = name
		}
		if body.Status != nil {
			switch *body.Status {
			case models.EquipmentActive, models.EquipmentInactive, models.EquipmentStatusMaintenance:
				eq.Status = *body.Status
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
			}
		}
		if body.IPAddress != nil {
			eq.IPAddress = strings.TrimSpace(*body.IPAddress)
		}
		if body.Port != nil {
			eq.Port = strings.TrimSpace(*body.Port)
		}
		if body.Notes != nil {
			eq.Notes = *body.Notes
		}

		if err := database.DB.Save(&eq).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o equipamento")
		}

		return c.JSON(eq)
	}
}

type CreateMaintenanceRequest struct {
	EquipmentID     uint                   `json:"equipment_id"`
	MaintenanceDate string                 `json:"maintenance_date"`
	Type            models.MaintenanceType `json:"type"`
	Description     string                 `json:"description"`
	Cost            *decimal.Decimal       `json:"cost"`
	Technician      string                 `json:"technician"`
	Notes           string                 `json:"notes"`
}

// GET /api/equipment/:id/maintenances
func ListMaintenancesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var maintenances []models.EquipmentMaintenance
		if err := database.DB.Where("equipment_id = ?", c.Params("id")).
			Order("maintenance_date desc").Find(&maintenances).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as manutenções")
		}
		return c.JSON(maintenances)
	}
}

// POST /api/equipment/maintenances
func CreateMaintenanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMaintenanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		var eq models.Equipment
		if err := database.DB.First(&eq, body.EquipmentID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Equipamento não encontrado")
		}

		if body.Type != models.MaintenancePreventive && body.Type != models.MaintenanceCorrective {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo deve ser 'preventive' ou 'corrective'")
		}
		body.Description = strings.TrimSpace(body.Description)
		if body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Descrição é obrigatória")
		}

		date, err := time.Parse("2006-01-02", body.MaintenanceDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data inválida, use 'YYYY-MM-DD'")
		}

		userID, _ := auth.CurrentUser(c)
		maintenance := models.EquipmentMaintenance{
			EquipmentID:     eq.ID,
			MaintenanceDate: date,
			Type:            body.Type,
			Description:     body.Description,
			Cost:            body.Cost,
			Technician:      strings.TrimSpace(body.Technician),
			Status:          models.MaintenanceScheduled,
			Notes:           body.Notes,
			CreatedBy:       userID,
		}

		if err := database.DB.Create(&maintenance).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível agendar a manutenção")
		}

		return c.Status(fiber.StatusCreated).JSON(maintenance)
	}
}

// PUT /api/equipment/maintenances/:id/status
func UpdateMaintenanceStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status models.MaintenanceStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		switch body.Status {
		case models.MaintenanceScheduled, models.MaintenanceInProgress, models.MaintenanceCompleted, models.MaintenanceCancelled:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
		}

		var maintenance models.EquipmentMaintenance
		if err := database.DB.First(&maintenance, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Manutenção não encontrada")
		}

		updates := map[string]interface{}{"status": body.Status}
		if err := database.DB.Model(&maintenance).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a manutenção")
		}

		// manutenção concluída atualiza as datas no cadastro do equipamento
		if body.Status == models.MaintenanceCompleted {
			next := maintenance.MaintenanceDate.AddDate(0, 6, 0)
			database.DB.Model(&models.Equipment{}).Where("id = ?", maintenance.EquipmentID).Updates(map[string]interface{}{
				"last_maintenance_date": maintenance.MaintenanceDate,
				"next_maintenance_date": next,
			})
		}

		maintenance.Status = body.Status
		return c.JSON(maintenance)
	}
}
