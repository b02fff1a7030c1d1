package repositories

import (
	"context"
	"errors"
	"time"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *db_models.Owner) error
	Save(ctx context.Context, owner *db_models.Owner) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Owner, error)
	FindByAccountID(ctx context.Context, accountID string) (*db_models.Owner, error)
	FindByAccountIDAndStatus(ctx context.Context, accountID string, status db_models.AccountStatus) (*db_models.Owner, error)
	FindByEmailAndStatus(ctx context.Context, email string, status db_models.AccountStatus) (*db_models.Owner, error)
	FindByPhoneNumberAndStatus(ctx context.Context, phone string, status db_models.AccountStatus) (*db_models.Owner, error)
}

type ownerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{
		db: db,
	}
}

func (r *ownerRepository) Create(ctx context.Context, owner *db_models.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) Save(ctx context.Context, owner *db_models.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}

func (r *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Owner, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ownerRepository) FindByAccountID(ctx context.Context, accountID string) (*db_models.Owner, error) {
	return r.first(ctx, "account_id = ?", accountID)
}

func (r *ownerRepository) FindByAccountIDAndStatus(ctx context.Context, accountID string, status db_models.AccountStatus) (*db_models.Owner, error) {
	return r.first(ctx, "account_id = ? AND status = ?", accountID, status)
}

func (r *ownerRepository) FindByEmailAndStatus(ctx context.Context, email string, status db_models.AccountStatus) (*db_models.Owner, error) {
	return r.first(ctx, "email = ? AND status = ?", email, status)
}

func (r *ownerRepository) FindByPhoneNumberAndStatus(ctx context.Context, phone string, status db_models.AccountStatus) (*db_models.Owner, error) {
	return r.first(ctx, "phone_number = ? AND status = ?", phone, status)
}

func (r *ownerRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Owner, error) {
	var owner db_models.Owner
	err := r.db.WithContext(ctx).Where(query, args...).First(&owner).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &owner, nil
}

// deleteOwnersScheduledBefore also removes the stores of the purged owners.
func deleteOwnersScheduledBefore(tx *gorm.DB, before time.Time) (int64, error) {
	expired := tx.Model(&db_models.Owner{}).Select("id").
		Where("status = ? AND scheduled_deletion_date < ?", db_models.AccountStatusDeleted, before)
	if err := tx.Where("owner_id IN (?)", expired).Delete(&db_models.Store{}).Error; err != nil {
		return 0, err
	}

	res := tx.Where("status = ? AND scheduled_deletion_date < ?", db_models.AccountStatusDeleted, before).
		Delete(&db_models.Owner{})
	return res.RowsAffected, res.Error
}
