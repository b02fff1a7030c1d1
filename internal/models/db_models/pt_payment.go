package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PtInformation is the quote draft created when a buyer starts a purchase.
// Price and membership are snapshots taken at creation.
type PtInformation struct {
	BaseModel
	TrainerID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"trainerId"`
	UserID        uuid.UUID     `gorm:"type:uuid;index;not null" json:"userId"`
	PtTimes       PtTimes       `gorm:"type:varchar(16);not null" json:"ptTimes"`
	PtPrice       float64       `json:"ptPrice"`
	IsMembership  bool          `json:"isMembership"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);not null" json:"paymentStatus"`

	Trainer *Trainer `gorm:"foreignKey:TrainerID" json:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}

type PtPayment struct {
	BaseModel
	TrainerID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"trainerId"`
	UserID        uuid.UUID     `gorm:"type:uuid;index;not null" json:"userId"`
	PtTimes       PtTimes       `gorm:"type:varchar(16);not null" json:"ptTimes"`
	PaymentType   PaymentType   `gorm:"type:varchar(16);not null" json:"paymentType"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);index;not null" json:"paymentStatus"`
	PaymentDate   time.Time     `json:"paymentDate"`
	ExpiryDate    time.Time     `json:"expiryDate"`
	IsMembership  bool          `json:"isMembership"`

	// Approval gateway response of the completing attempt.
	Receipt datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"receipt,omitempty"`
}

// UserPt is the entitlement granted once a payment completes.
type UserPt struct {
	BaseModel
	TrainerID     uuid.UUID     `gorm:"type:uuid;index:idx_user_pt_pair;not null" json:"trainerId"`
	UserID        uuid.UUID     `gorm:"type:uuid;index:idx_user_pt_pair;not null" json:"userId"`
	PtPaymentID   uuid.UUID     `gorm:"type:uuid;index" json:"ptPaymentId"`
	PtTimes       PtTimes       `gorm:"type:varchar(16);not null" json:"ptTimes"`
	PaymentType   PaymentType   `gorm:"type:varchar(16);not null" json:"paymentType"`
	Amount        float64       `json:"amount"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(16)" json:"paymentStatus"`
	PaymentDate   time.Time     `json:"paymentDate"`
	ExpiryDate    time.Time     `json:"expiryDate"`
	IsMembership  bool          `json:"isMembership"`
	IsActive      bool          `gorm:"index:idx_user_pt_pair" json:"isActive"`
}
