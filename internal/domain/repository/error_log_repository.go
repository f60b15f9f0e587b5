package repository

import (
	"context"

	"authcore/internal/domain/entity"
)

// ErrorLogRepository persists diagnostic traces of unexpected failures.
type ErrorLogRepository interface {
	// Record stores a single entry and fills in its ID and CreatedAt.
	Record(ctx context.Context, entry *entity.ErrorLog) error
}
