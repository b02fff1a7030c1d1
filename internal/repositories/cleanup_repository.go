package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type CleanupRepository interface {
	// PurgeScheduledBefore removes withdrawn users and owners whose purge date is before the given time.
	PurgeScheduledBefore(ctx context.Context, before time.Time) (users int64, owners int64, err error)
}

type cleanupRepository struct {
	db *gorm.DB
}

func NewCleanupRepository(db *gorm.DB) CleanupRepository {
	return &cleanupRepository{db: db}
}

func (r *cleanupRepository) PurgeScheduledBefore(ctx context.Context, before time.Time) (int64, int64, error) {
	var users, owners int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if users, err = deleteUsersScheduledBefore(tx, before); err != nil {
			return err
		}
		owners, err = deleteOwnersScheduledBefore(tx, before)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return users, owners, nil
}
