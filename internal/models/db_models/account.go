package db_models

import "time"

// Account holds the fields shared by users, owners and trainers.
type Account struct {
	AccountID             string        `gorm:"uniqueIndex;not null" json:"accountId"`
	Password              string        `gorm:"not null" json:"-"`
	Email                 string        `gorm:"index" json:"email"`
	PhoneNumber           string        `gorm:"index" json:"phoneNumber"`
	Nickname              string        `json:"nickname"`
	Status                AccountStatus `gorm:"type:varchar(16);index;default:ACTIVE" json:"status"`
	Role                  string        `gorm:"type:varchar(16)" json:"role"`
	DeletedAt             *time.Time    `json:"deletedAt,omitempty"`
	ScheduledDeletionDate *time.Time    `gorm:"index" json:"scheduledDeletionDate,omitempty"`
}

func (a *Account) IsActive() bool { return a.Status == AccountStatusActive }

// SoftDelete marks the account DELETED and schedules its purge after retention.
func (a *Account) SoftDelete(now time.Time, retention time.Duration) {
	purge := now.Add(retention)
	a.Status = AccountStatusDeleted
	a.DeletedAt = &now
	a.ScheduledDeletionDate = &purge
}

func (a *Account) Reactivate(hashedPassword string) {
	a.Status = AccountStatusActive
	a.Password = hashedPassword
	a.DeletedAt = nil
	a.ScheduledDeletionDate = nil
}
