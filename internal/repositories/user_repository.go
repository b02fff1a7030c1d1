package repositories

import (
	"context"
	"errors"
	"time"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	Save(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByAccountID(ctx context.Context, accountID string) (*db_models.User, error)
	FindByAccountIDAndStatus(ctx context.Context, accountID string, status db_models.AccountStatus) (*db_models.User, error)
	FindByEmailAndStatus(ctx context.Context, email string, status db_models.AccountStatus) (*db_models.User, error)
	FindByPhoneNumberAndStatus(ctx context.Context, phone string, status db_models.AccountStatus) (*db_models.User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) FindByAccountID(ctx context.Context, accountID string) (*db_models.User, error) {
	return r.first(ctx, "account_id = ?", accountID)
}

func (r *userRepository) FindByAccountIDAndStatus(ctx context.Context, accountID string, status db_models.AccountStatus) (*db_models.User, error) {
	return r.first(ctx, "account_id = ? AND status = ?", accountID, status)
}

func (r *userRepository) FindByEmailAndStatus(ctx context.Context, email string, status db_models.AccountStatus) (*db_models.User, error) {
	return r.first(ctx, "email = ? AND status = ?", email, status)
}

func (r *userRepository) FindByPhoneNumberAndStatus(ctx context.Context, phone string, status db_models.AccountStatus) (*db_models.User, error) {
	return r.first(ctx, "phone_number = ? AND status = ?", phone, status)
}

func (r *userRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// deleteUsersScheduledBefore hard-deletes withdrawn users whose purge deadline has passed.
func deleteUsersScheduledBefore(tx *gorm.DB, before time.Time) (int64, error) {
	expired := tx.Model(&db_models.User{}).Select("id").
		Where("status = ? AND scheduled_deletion_date < ?", db_models.AccountStatusDeleted, before)
	if err := tx.Where("user_id IN (?)", expired).Delete(&db_models.PtInformation{}).Error; err != nil {
		return 0, err
	}

	res := tx.Where("status = ? AND scheduled_deletion_date < ?", db_models.AccountStatusDeleted, before).
		Delete(&db_models.User{})
	return res.RowsAffected, res.Error
}
