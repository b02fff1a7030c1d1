package repositories

import (
	"context"
	"errors"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PtInformationRepository interface {
	Create(ctx context.Context, info *db_models.PtInformation) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.PtInformation, error)
}

type PtPaymentRepository interface {
	Create(ctx context.Context, payment *db_models.PtPayment) error
	Save(ctx context.Context, payment *db_models.PtPayment) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.PtPayment, error)
}

type UserPtRepository interface {
	Create(ctx context.Context, userPt *db_models.UserPt) error
	FindAllByTrainerIDAndUserIDAndIsActive(ctx context.Context, trainerID, userID uuid.UUID, isActive bool) ([]db_models.UserPt, error)
}

type ptInformationRepository struct {
	db *gorm.DB
}

func NewPtInformationRepository(db *gorm.DB) PtInformationRepository {
	return &ptInformationRepository{db: db}
}

func (r *ptInformationRepository) Create(ctx context.Context, info *db_models.PtInformation) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *ptInformationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.PtInformation, error) {
	var info db_models.PtInformation
	err := r.db.WithContext(ctx).First(&info, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &info, nil
}

type ptPaymentRepository struct {
	db *gorm.DB
}

func NewPtPaymentRepository(db *gorm.DB) PtPaymentRepository {
	return &ptPaymentRepository{db: db}
}

func (r *ptPaymentRepository) Create(ctx context.Context, payment *db_models.PtPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Save updates the row in place, keeping its id.
func (r *ptPaymentRepository) Save(ctx context.Context, payment *db_models.PtPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *ptPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.PtPayment, error) {
	var payment db_models.PtPayment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

type userPtRepository struct {
	db *gorm.DB
}

func NewUserPtRepository(db *gorm.DB) UserPtRepository {
	return &userPtRepository{db: db}
}

func (r *userPtRepository) Create(ctx context.Context, userPt *db_models.UserPt) error {
	return r.db.WithContext(ctx).Create(userPt).Error
}

func (r *userPtRepository) FindAllByTrainerIDAndUserIDAndIsActive(ctx context.Context, trainerID, userID uuid.UUID, isActive bool) ([]db_models.UserPt, error) {
	var rows []db_models.UserPt
	err := r.db.WithContext(ctx).
		Where("trainer_id = ? AND user_id = ? AND is_active = ?", trainerID, userID, isActive).
		Find(&rows).Error
	return rows, err
}
