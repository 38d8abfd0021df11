package admin

import (
	"regexp"
	"strings"

	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	NumericID int               `json:"numeric_id"`
	Name      string            `json:"name"`
	PIN       string            `json:"pin"`
	Roles     []models.UserRole `json:"roles"`
}

type UpdateUserRequest struct {
	Name   *string            `json:"name"`
	PIN    *string            `json:"pin"`
	Roles  *[]models.UserRole `json:"roles"`
	Active *bool              `json:"active"`
}

type UserResponse struct {
	ID        uint            `json:"id"`
	NumericID int             `json:"numeric_id"`
	Name      string          `json:"name"`
	Roles     models.RoleList `json:"roles"`
	Active    bool            `json:"active"`
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

func toResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		NumericID: u.NumericID,
		Name:      u.Name,
		Roles:     u.Roles,
		Active:    u.Active,
	}
}

func validateRoles(roles []models.UserRole) error {
	if len(roles) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Informe ao menos um papel")
	}
	for _, r := range roles {
		if !models.ValidRole(r) {
			return fiber.NewError(fiber.StatusBadRequest, "Papel inválido: "+string(r))
		}
	}
	return nil
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("numeric_id asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os usuários")
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toResponse(u))
		}
		return c.JSON(resp)
	}
}

// POST /api/admin/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.NumericID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Nome e ID numérico são obrigatórios")
		}
		if !pinPattern.MatchString(body.PIN) {
			return fiber.NewError(fiber.StatusBadRequest, "PIN deve ter 4 dígitos")
		}
		if err := validateRoles(body.Roles); err != nil {
			return err
		}

		var existing models.User
		if err := database.DB.Where("numeric_id = ?", body.NumericID).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Este ID numérico já está em uso")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.PIN), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash do PIN")
		}

		user := models.User{
			NumericID: body.NumericID,
			Name:      body.Name,
			PinHash:   string(hash),
			Roles:     models.RoleList(body.Roles),
			Active:    true,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(user))
	}
}

// PUT /api/admin/users/:id
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
			}
			user.Name = name
		}
		if body.PIN != nil {
			if !pinPattern.MatchString(*body.PIN) {
				return fiber.NewError(fiber.StatusBadRequest, "PIN deve ter 4 dígitos")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.PIN), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash do PIN")
			}
			user.PinHash = string(hash)
		}
		if body.Roles != nil {
			if err := validateRoles(*body.Roles); err != nil {
				return err
			}
			user.Roles = models.RoleList(*body.Roles)
		}
		if body.Active != nil {
			user.Active = *body.Active
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o usuário")
		}

		return c.JSON(toResponse(user))
	}
}

// DELETE /api/admin/users/:id - desativa, não apaga (histórico de auditoria)
func DeactivateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		if err := database.DB.Model(&user).Update("active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível desativar o usuário")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
