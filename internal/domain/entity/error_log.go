package entity

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLog is a durable record of an unexpected failure, kept for later diagnosis.
type ErrorLog struct {
	ID        uuid.UUID
	Stack     string // Diagnostic trace of the failure.
	CreatedAt time.Time
}
