package hr

import (
	"strings"
	"time"

	"comanda-backend/internal/auth"
	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	UserID         *uint            `json:"user_id"`
	FullName       string           `json:"full_name"`
	DocumentNumber string           `json:"document_number"`
	BirthDate      *string          `json:"birth_date"` // "2006-01-02"
	HireDate       string           `json:"hire_date"`
	Position       string           `json:"position"`
	Department     string           `json:"department"`
	Salary         *decimal.Decimal `json:"salary"`
}

type UpdateEmployeeRequest struct {
	FullName   *string                `json:"full_name"`
	Position   *string                `json:"position"`
	Department *string                `json:"department"`
	Salary     *decimal.Decimal       `json:"salary"`
	Status     *models.EmployeeStatus `json:"status"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// GET /api/hr/employees?status=active&department=Cozinha
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Employee{})

		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if department := c.Query("department"); department != "" {
			dbq = dbq.Where("department = ?", department)
		}

		var employees []models.Employee
		if err := dbq.Order("full_name asc").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os funcionários")
		}
		return c.JSON(employees)
	}
}

// POST /api/hr/employees
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		body.DocumentNumber = strings.TrimSpace(body.DocumentNumber)
		if body.FullName == "" || body.DocumentNumber == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome completo e CPF são obrigatórios")
		}
		if strings.TrimSpace(body.Position) == "" || strings.TrimSpace(body.Department) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Cargo e departamento são obrigatórios")
		}

		hireDate, err := parseDate(body.HireDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data de admissão inválida, use 'YYYY-MM-DD'")
		}

		emp := models.Employee{
			UserID:         body.UserID,
			FullName:       body.FullName,
			DocumentNumber: body.DocumentNumber,
			HireDate:       hireDate,
			Position:       strings.TrimSpace(body.Position),
			Department:     strings.TrimSpace(body.Department),
			Salary:         body.Salary,
			Status:         models.EmployeeActive,
		}
		if body.BirthDate != nil && *body.BirthDate != "" {
			birth, err := parseDate(*body.BirthDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data de nascimento inválida")
			}
			emp.BirthDate = &birth
		}

		if err := database.DB.Create(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o funcionário")
		}

		return c.Status(fiber.StatusCreated).JSON(emp)
	}
}

// PUT /api/hr/employees/:id
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Funcionário não encontrado")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		if body.FullName != nil {
			name := strings.TrimSpace(*body.FullName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
			}
			emp.FullName = name
		}
		if body.Position != nil {
			emp.Position = strings.TrimSpace(*body.Position)
		}
		if body.Department != nil {
			emp.Department = strings.TrimSpace(*body.Department)
		}
		if body.Salary != nil {
			emp.Salary = body.Salary
		}
		if body.Status != nil {
			switch *body.Status {
			case models.EmployeeActive, models.EmployeeInactive, models.EmployeeVacation, models.EmployeeLeave:
				emp.Status = *body.Status
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
			}
		}

		if err := database.DB.Save(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o funcionário")
		}

		return c.JSON(emp)
	}
}

type CreateScheduleRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Notes      string `json:"notes"`
}

// GET /api/hr/schedules?employee_id=1&from=...&to=...
func ListSchedulesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.WorkSchedule{})

		if employeeID := c.Query("employee_id"); employeeID != "" {
			dbq = dbq.Where("employee_id = ?", employeeID)
		}
		if fromStr := c.Query("from"); fromStr != "" {
			from, err := parseDate(fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data 'from' inválida")
			}
			dbq = dbq.Where("date >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := parseDate(toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data 'to' inválida")
			}
			dbq = dbq.Where("date <= ?", to)
		}

		var schedules []models.WorkSchedule
		if err := dbq.Order("date asc, start_time asc").Find(&schedules).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as escalas")
		}
		return c.JSON(schedules)
	}
}

// POST /api/hr/schedules
func CreateScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateScheduleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		var emp models.Employee
		if err := database.DB.First(&emp, body.EmployeeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Funcionário não encontrado")
		}

		date, err := parseDate(body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data inválida, use 'YYYY-MM-DD'")
		}
		if body.StartTime == "" || body.EndTime == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Horário de início e fim são obrigatórios")
		}

		schedule := models.WorkSchedule{
			EmployeeID: emp.ID,
			Date:       date,
			StartTime:  body.StartTime,
			EndTime:    body.EndTime,
			BreakStart: body.BreakStart,
			BreakEnd:   body.BreakEnd,
			Status:     models.ScheduleScheduled,
			Notes:      body.Notes,
		}

		if err := database.DB.Create(&schedule).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar a escala")
		}

		return c.Status(fiber.StatusCreated).JSON(schedule)
	}
}

// PUT /api/hr/schedules/:id/status
func UpdateScheduleStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status models.ScheduleStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		switch body.Status {
		case models.ScheduleScheduled, models.ScheduleCompleted, models.ScheduleAbsent, models.ScheduleChanged:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
		}

		var schedule models.WorkSchedule
		if err := database.DB.First(&schedule, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Escala não encontrada")
		}

		if err := database.DB.Model(&schedule).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a escala")
		}

		schedule.Status = body.Status
		return c.JSON(schedule)
	}
}

type CreateVacationRequest struct {
	EmployeeID uint   `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Notes      string `json:"notes"`
}

// GET /api/hr/vacations?employee_id=1
func ListVacationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Vacation{})
		if employeeID := c.Query("employee_id"); employeeID != "" {
			dbq = dbq.Where("employee_id = ?", employeeID)
		}

		var vacations []models.Vacation
		if err := dbq.Order("start_date desc").Find(&vacations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as férias")
		}
		return c.JSON(vacations)
	}
}

// POST /api/hr/vacations
func CreateVacationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVacationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		var emp models.Employee
		if err := database.DB.First(&emp, body.EmployeeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Funcionário não encontrado")
		}

		start, err := parseDate(body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data inicial inválida")
		}
		end, err := parseDate(body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Data final inválida")
		}
		if end.Before(start) {
			return fiber.NewError(fiber.StatusBadRequest, "Data final não pode ser anterior à inicial")
		}

		userID, _ := auth.CurrentUser(c)
		vacation := models.Vacation{
			EmployeeID: emp.ID,
			StartDate:  start,
			EndDate:    end,
			Status:     models.VacationScheduled,
			Notes:      body.Notes,
			CreatedBy:  userID,
		}

		if err := database.DB.Create(&vacation).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível agendar as férias")
		}

		return c.Status(fiber.StatusCreated).JSON(vacation)
	}
}

// PUT /api/hr/vacations/:id/status
func UpdateVacationStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status models.VacationStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		switch body.Status {
		case models.VacationScheduled, models.VacationApproved, models.VacationCancelled, models.VacationCompleted:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Status inválido")
		}

		var vacation models.Vacation
		if err := database.DB.First(&vacation, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Férias não encontradas")
		}

		if err := database.DB.Model(&vacation).Update("status", body.Status).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar as férias")
		}

		vacation.Status = body.Status
		return c.JSON(vacation)
	}
}
