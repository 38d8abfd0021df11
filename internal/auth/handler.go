package auth

import (
	"regexp"
	"strings"

	"comanda-backend/internal/config"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	NumericID int    `json:"numeric_id"`
	PIN       string `json:"pin"`
}

type RegisterAdminRequest struct {
	NumericID int    `json:"numeric_id"`
	Name      string `json:"name"`
	PIN       string `json:"pin"`
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// POST /api/auth/register-admin - bootstrap do primeiro admin
func RegisterAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.NumericID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Nome e ID numérico são obrigatórios")
		}
		if !pinPattern.MatchString(body.PIN) {
			return fiber.NewError(fiber.StatusBadRequest, "PIN deve ter 4 dígitos")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("roles LIKE ?", "%"+string(models.RoleAdmin)+"%").
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "Já existe um administrador")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.PIN), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash do PIN")
		}

		user := models.User{
			NumericID: body.NumericID,
			Name:      body.Name,
			PinHash:   string(hash),
			Roles:     models.RoleList{models.RoleAdmin},
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":         user.ID,
			"numeric_id": user.NumericID,
			"roles":      user.Roles,
		})
	}
}

// POST /api/auth/login - ID numérico + PIN
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var user models.User
		if err := database.DB.Where("numeric_id = ? AND active = ?", body.NumericID, true).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "ID ou PIN inválidos")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(body.PIN)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "ID ou PIN inválidos")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		roles := user.Roles
		if roles.Has(models.RoleAdmin) {
			roles = models.AllRoles
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":         user.ID,
				"numeric_id": user.NumericID,
				"name":       user.Name,
				"roles":      roles,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)

		var user models.User
		if userID, ok := userIDVal.(uint); ok {
			if err := database.DB.First(&user, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"user_id":    user.ID,
					"numeric_id": user.NumericID,
					"name":       user.Name,
					"roles":      user.Roles,
				})
			}
		}

		// Fallback: devolve o que está nos locals
		return c.JSON(fiber.Map{
			"user_id": userIDVal,
			"roles":   c.Locals(CtxRolesKey),
		})
	}
}
