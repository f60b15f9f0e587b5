package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLogModel mirrors the 'error_logs' table.
type ErrorLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Stack     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ErrorLogModel) TableName() string {
	return "error_logs"
}
