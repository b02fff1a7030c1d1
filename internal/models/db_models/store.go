package db_models

import "github.com/google/uuid"

type Store struct {
	BaseModel
	StoreName     string    `gorm:"not null" json:"storeName"`
	Address       string    `json:"address"`
	StreetAddress string    `json:"streetAddress"`
	PostalCode    string    `json:"postalCode"`
	StoreInfo     string    `json:"storeInfo"`
	StoreHour     string    `json:"storeHour"`
	StoreTel      string    `json:"storeTel"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`

	Owner *Owner `gorm:"foreignKey:OwnerID" json:"-"`
}
