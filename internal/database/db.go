package database

import (
	"log"

	"comanda-backend/internal/config"
	"comanda-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.CashRegister{},
		&models.AuditLog{},
		// RH
		&models.Employee{},
		&models.WorkSchedule{},
		&models.Vacation{},
		// Financeiro
		&models.FinancialTransaction{},
		&models.Commission{},
		// Equipamentos
		&models.Equipment{},
		&models.EquipmentMaintenance{},
		// Estoque
		&models.StockItem{},
		&models.StockMovement{},
		// Mesas e reservas
		&models.DiningTable{},
		&models.TableReservation{},
		// Estabelecimentos
		&models.Establishment{},
		// Avaliações de desempenho
		&models.PerformanceReview{},
	)
	if err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	// Índice único parcial: no máximo um caixa aberto por vez. A checagem
	// na aplicação dá a mensagem amigável; o índice elimina a corrida
	// check-then-act entre dois terminais.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_registers_one_open
		ON cash_registers (status) WHERE status = 'open'
	`).Error; err != nil {
		log.Fatalf("Erro ao criar índice de caixa aberto: %v", err)
	}

	log.Println("Conexão com o banco estabelecida. Migration concluída.")
}
