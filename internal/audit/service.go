package audit

import (
	"encoding/json"
	"fmt"

	"comanda-backend/internal/database"
	"comanda-backend/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog grava uma entrada de auditoria. Usa a transação recebida quando
// houver, para que o log entre no mesmo commit da mutação.
func WriteLog(tx *gorm.DB, opts LogOptions) error {
	if tx == nil {
		tx = database.DB
	}

	// jsonb não aceita string vazia, o default precisa ser "null"
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("não foi possível gravar o audit log: %w", err)
	}

	return nil
}
