package postgres

import (
	"context"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// errorLogRepository implements the domain.ErrorLogRepository interface using GORM.
type errorLogRepository struct {
	db *gorm.DB
}

// NewErrorLogRepository is the constructor for errorLogRepository.
func NewErrorLogRepository(db *gorm.DB) repository.ErrorLogRepository {
	return &errorLogRepository{db: db}
}

// Record inserts one diagnostic trace.
func (repo *errorLogRepository) Record(ctx context.Context, entry *entity.ErrorLog) error {
	errorLogModel := fromErrorLogDomain(entry)
	if err := repo.db.WithContext(ctx).Create(errorLogModel).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record error log")
	}

	entry.ID = errorLogModel.ID
	entry.CreatedAt = errorLogModel.CreatedAt

	return nil
}

func fromErrorLogDomain(entry *entity.ErrorLog) *model.ErrorLogModel {
	return &model.ErrorLogModel{
		ID:        entry.ID,
		Stack:     entry.Stack,
		CreatedAt: entry.CreatedAt,
	}
}
