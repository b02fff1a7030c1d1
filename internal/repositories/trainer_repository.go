package repositories

import (
	"context"
	"errors"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainerRepository interface {
	Create(ctx context.Context, trainer *db_models.Trainer) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trainer, error)
	FindByAccountID(ctx context.Context, accountID string) (*db_models.Trainer, error)
	FindAllByStatus(ctx context.Context, status db_models.AccountStatus) ([]db_models.Trainer, error)
}

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{
		db: db,
	}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *db_models.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

func (r *trainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trainer, error) {
	var trainer db_models.Trainer
	err := r.db.WithContext(ctx).First(&trainer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trainer, nil
}

func (r *trainerRepository) FindByAccountID(ctx context.Context, accountID string) (*db_models.Trainer, error) {
	var trainer db_models.Trainer
	err := r.db.WithContext(ctx).First(&trainer, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trainer, nil
}

func (r *trainerRepository) FindAllByStatus(ctx context.Context, status db_models.AccountStatus) ([]db_models.Trainer, error) {
	var trainers []db_models.Trainer
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&trainers).Error
	return trainers, err
}
