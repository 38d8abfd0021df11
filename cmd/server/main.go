package main

import (
	"log"
	"strings"

	"comanda-backend/internal/admin"
	"comanda-backend/internal/audit"
	"comanda-backend/internal/auth"
	"comanda-backend/internal/config"
	"comanda-backend/internal/database"
	"comanda-backend/internal/equipment"
	"comanda-backend/internal/establishment"
	"comanda-backend/internal/financial"
	"comanda-backend/internal/hr"
	"comanda-backend/internal/menu"
	"comanda-backend/internal/models"
	"comanda-backend/internal/order"
	"comanda-backend/internal/register"
	"comanda-backend/internal/report"
	"comanda-backend/internal/reservation"
	"comanda-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Público
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegido
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Get("/users", admin.ListUsersHandler())
	adminRoutes.Post("/users", admin.CreateUserHandler())
	adminRoutes.Put("/users/:id", admin.UpdateUserHandler())
	adminRoutes.Delete("/users/:id", admin.DeactivateUserHandler())

	adminRoutes.Post("/menu-items", menu.CreateMenuItemHandler())
	adminRoutes.Put("/menu-items/:id", menu.UpdateMenuItemHandler())
	adminRoutes.Delete("/menu-items/:id", menu.DeleteMenuItemHandler())

	adminRoutes.Get("/establishments", establishment.ListEstablishmentsHandler())
	adminRoutes.Post("/establishments", establishment.CreateEstablishmentHandler())
	adminRoutes.Put("/establishments/:id", establishment.UpdateEstablishmentHandler())

	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Cardápio (leitura para todos os painéis)
	protected.Get("/menu-items", menu.ListMenuItemsHandler())

	// Pedidos
	protected.Get("/orders", order.ListOrdersHandler())
	protected.Get("/orders/:id", order.GetOrderHandler())
	protected.Post("/orders",
		auth.RequireRole(models.RoleWaiter, models.RoleCashier, models.RoleManager),
		order.CreateOrderHandler())
	protected.Put("/orders/:id/status",
		auth.RequireRole(models.RoleKitchen, models.RoleWaiter, models.RoleCashier, models.RoleManager),
		order.ChangeStatusHandler())
	protected.Post("/orders/:id/payment",
		auth.RequireRole(models.RoleCashier, models.RoleManager),
		order.PayOrderHandler())
	protected.Post("/orders/:id/split",
		auth.RequireRole(models.RoleCashier, models.RoleManager),
		order.SplitOrderHandler())

	// Mesas e reservas
	tableRoutes := protected.Group("/tables")
	tableRoutes.Use(auth.RequireRole(models.RoleWaiter, models.RoleManager))

	tableRoutes.Get("/", reservation.ListTablesHandler())
	tableRoutes.Post("/", reservation.CreateTableHandler())
	tableRoutes.Put("/:id", reservation.UpdateTableHandler())

	reservationRoutes := protected.Group("/reservations")
	reservationRoutes.Use(auth.RequireRole(models.RoleWaiter, models.RoleManager))

	reservationRoutes.Get("/", reservation.ListReservationsHandler())
	reservationRoutes.Post("/", reservation.CreateReservationHandler())
	reservationRoutes.Put("/:id/status", reservation.UpdateReservationStatusHandler())

	// Caixa
	cashierRoutes := protected.Group("/cash-registers")
	cashierRoutes.Use(auth.RequireRole(models.RoleCashier, models.RoleManager))

	cashierRoutes.Get("/current", register.CurrentRegisterHandler())
	cashierRoutes.Post("/open", register.OpenRegisterHandler())
	cashierRoutes.Post("/close", register.CloseRegisterHandler())
	cashierRoutes.Get("/", register.ListRegistersHandler())

	// Relatórios
	reportRoutes := protected.Group("/reports")
	reportRoutes.Use(auth.RequireRole(models.RoleCashier, models.RoleManager, models.RoleFinancial))

	reportRoutes.Get("/sales", report.SalesSummaryHandler())
	reportRoutes.Get("/tables", report.TableSummaryHandler())

	// RH
	hrRoutes := protected.Group("/hr")
	hrRoutes.Use(auth.RequireRole(models.RoleHR, models.RoleManager))

	hrRoutes.Get("/employees", hr.ListEmployeesHandler())
	hrRoutes.Post("/employees", hr.CreateEmployeeHandler())
	hrRoutes.Put("/employees/:id", hr.UpdateEmployeeHandler())
	hrRoutes.Get("/schedules", hr.ListSchedulesHandler())
	hrRoutes.Post("/schedules", hr.CreateScheduleHandler())
	hrRoutes.Put("/schedules/:id/status", hr.UpdateScheduleStatusHandler())
	hrRoutes.Get("/vacations", hr.ListVacationsHandler())
	hrRoutes.Post("/vacations", hr.CreateVacationHandler())
	hrRoutes.Put("/vacations/:id/status", hr.UpdateVacationStatusHandler())
	hrRoutes.Get("/reviews", hr.ListReviewsHandler())
	hrRoutes.Post("/reviews", hr.CreateReviewHandler())

	// Financeiro
	financialRoutes := protected.Group("/financial")
	financialRoutes.Use(auth.RequireRole(models.RoleFinancial, models.RoleManager))

	financialRoutes.Get("/transactions", financial.ListTransactionsHandler())
	financialRoutes.Post("/transactions", financial.CreateTransactionHandler())
	financialRoutes.Post("/transactions/:id/pay", financial.PayTransactionHandler())
	financialRoutes.Delete("/transactions/:id", financial.CancelTransactionHandler())
	financialRoutes.Get("/commissions", financial.ListCommissionsHandler())
	financialRoutes.Post("/commissions", financial.CreateCommissionHandler())

	// Estoque
	stockRoutes := protected.Group("/stock")
	stockRoutes.Use(auth.RequireRole(models.RoleStock, models.RoleManager))

	stockRoutes.Get("/items", stock.ListStockItemsHandler())
	stockRoutes.Post("/items", stock.CreateStockItemHandler())
	stockRoutes.Get("/items/:id/movements", stock.ListMovementsHandler())
	stockRoutes.Put("/items/:id", stock.UpdateStockItemHandler())
	stockRoutes.Post("/movements", stock.CreateMovementHandler())

	// Equipamentos
	equipmentRoutes := protected.Group("/equipment")
	equipmentRoutes.Use(auth.RequireRole(models.RoleEquipment, models.RoleManager))

	equipmentRoutes.Get("/", equipment.ListEquipmentHandler())
	equipmentRoutes.Post("/", equipment.CreateEquipmentHandler())
	equipmentRoutes.Put("/maintenances/:id/status", equipment.UpdateMaintenanceStatusHandler())
	equipmentRoutes.Post("/maintenances", equipment.CreateMaintenanceHandler())
	equipmentRoutes.Get("/:id/maintenances", equipment.ListMaintenancesHandler())
	equipmentRoutes.Put("/:id", equipment.UpdateEquipmentHandler())

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
