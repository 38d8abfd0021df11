package hr

import (
	"strings"

	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ValidScore - notas de avaliação vão de 1 a 5.
func ValidScore(score int) bool {
	return score >= 1 && score <= 5
}

type CreateReviewRequest struct {
	EmployeeID   uint   `json:"employee_id"`
	ReviewDate   string `json:"review_date"`
	Score        int    `json:"score"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	Goals        string `json:"goals"`
}

// GET /api/hr/reviews?employee_id=3
func ListReviewsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.PerformanceReview{})
		if employeeID := c.Query("employee_id"); employeeID != "" {
			dbq = dbq.Where("employee_id = ?", employeeID)
		}

		var reviews []models.PerformanceReview
		if err := dbq.Order("review_date desc").Find(&reviews).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as avaliações")
		}
		return c.JSON(reviews)
	}
}

// POST /api/hr/reviews
func CreateReviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateReviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if !ValidScore(body.Score) {
			return fiber.NewError(fiber.StatusBadRequest, "Nota deve estar entre 1 e 5")
		}

		var emp models.Employee
		if err := database.DB.First(&emp, body.EmployeeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Funcionário não encontrado")
		}

		reviewDate, err := parseDate(body.ReviewDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data da avaliação inválida, use 'YYYY-MM-DD'")
		}

		reviewerID, _ := auth.CurrentUser(c)
		review := models.PerformanceReview{
			EmployeeID:   emp.ID,
			ReviewDate:   reviewDate,
			Score:        body.Score,
			Strengths:    strings.TrimSpace(body.Strengths),
			Improvements: strings.TrimSpace(body.Improvements),
			Goals:        strings.TrimSpace(body.Goals),
			ReviewerID:   reviewerID,
		}

		if err := database.DB.Create(&review).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar a avaliação")
		}

		return c.Status(fiber.StatusCreated).JSON(review)
	}
}
