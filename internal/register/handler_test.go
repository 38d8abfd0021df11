package register

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"comanda-backend/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() { database.DB = prev })

	return mock
}

func TestOpenRegisterHandler_AlreadyOpen(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cash_registers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	app := fiber.New()
	app.Post("/cash-registers/open", OpenRegisterHandler())

	req := httptest.NewRequest("POST", "/cash-registers/open",
		strings.NewReader(`{"initial_amount":"150.00"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Já existe um caixa aberto")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenRegisterHandler_NegativeInitialAmount(t *testing.T) {
	setupMockDB(t)

	app := fiber.New()
	app.Post("/cash-registers/open", OpenRegisterHandler())

	req := httptest.NewRequest("POST", "/cash-registers/open",
		strings.NewReader(`{"initial_amount":"-10.00"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
