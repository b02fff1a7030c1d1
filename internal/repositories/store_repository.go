package repositories

import (
	"context"
	"errors"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(ctx context.Context, store *db_models.Store) error
	Save(ctx context.Context, store *db_models.Store) error
	Delete(ctx context.Context, store *db_models.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Store, error)
	FindAllOrderByCreatedAt(ctx context.Context) ([]db_models.Store, error)
	FindAllByOwnerIDOrderByCreatedAt(ctx context.Context, ownerID uuid.UUID) ([]db_models.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{
		db: db,
	}
}

func (r *storeRepository) Create(ctx context.Context, store *db_models.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) Save(ctx context.Context, store *db_models.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, store *db_models.Store) error {
	return r.db.WithContext(ctx).Delete(store).Error
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Store, error) {
	var store db_models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &store, nil
}

func (r *storeRepository) FindAllOrderByCreatedAt(ctx context.Context) ([]db_models.Store, error) {
	var stores []db_models.Store
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&stores).Error
	return stores, err
}

func (r *storeRepository) FindAllByOwnerIDOrderByCreatedAt(ctx context.Context, ownerID uuid.UUID) ([]db_models.Store, error) {
	var stores []db_models.Store
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&stores).Error
	return stores, err
}
