package establishment

import (
	"fmt"
	"strings"

	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ValidModules - os módulos de uma unidade são os nomes dos painéis, o
// mesmo vocabulário dos papéis de usuário.
func ValidModules(mods []string) error {
	for _, m := range mods {
		if !models.ValidRole(models.UserRole(m)) {
			return fmt.Errorf("módulo inválido: %s", m)
		}
	}
	return nil
}

type CreateEstablishmentRequest struct {
	Name     string   `json:"name"`
	Document string   `json:"document"`
	Address  string   `json:"address"`
	Phone    string   `json:"phone"`
	Modules  []string `json:"modules"`
}

type UpdateEstablishmentRequest struct {
	Name    *string   `json:"name"`
	Address *string   `json:"address"`
	Phone   *string   `json:"phone"`
	Modules *[]string `json:"modules"`
	Active  *bool     `json:"active"`
}

// GET /api/admin/establishments
func ListEstablishmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var establishments []models.Establishment
		if err := database.DB.Order("name asc").Find(&establishments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os estabelecimentos")
		}
		return c.JSON(establishments)
	}
}

// POST /api/admin/establishments
func CreateEstablishmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEstablishmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Document = strings.TrimSpace(body.Document)
		if body.Name == "" || body.Document == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome e CNPJ são obrigatórios")
		}
		if err := ValidModules(body.Modules); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var existing models.Establishment
		if err := database.DB.Where("document = ?", body.Document).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Já existe um estabelecimento com este CNPJ")
		}

		est := models.Establishment{
			Name:     body.Name,
			Document: body.Document,
			Address:  strings.TrimSpace(body.Address),
			Phone:    strings.TrimSpace(body.Phone),
			Modules:  body.Modules,
			Active:   true,
		}

		if err := database.DB.Create(&est).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o estabelecimento")
		}

		return c.Status(fiber.StatusCreated).JSON(est)
	}
}

// PUT /api/admin/establishments/:id - dados e liga/desliga de módulos
func UpdateEstablishmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var est models.Establishment
		if err := database.DB.First(&est, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Estabelecimento não encontrado")
		}

		var body UpdateEstablishmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
			}
			est.Name = name
		}
		if body.Address != nil {
			est.Address = strings.TrimSpace(*body.Address)
		}
		if body.Phone != nil {
			est.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Modules != nil {
			if err := ValidModules(*body.Modules); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			est.Modules = *body.Modules
		}
		if body.Active != nil {
			est.Active = *body.Active
		}

		if err := database.DB.Save(&est).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o estabelecimento")
		}

		return c.JSON(est)
	}
}
