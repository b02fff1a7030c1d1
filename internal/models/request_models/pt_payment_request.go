package request_models

import (
	"fitple/internal/models/db_models"
	"github.com/google/uuid"
)

type PtInformationRequest struct {
	TrainerID uuid.UUID         `json:"trainerId" binding:"required"`
	UserID    uuid.UUID         `json:"userId" binding:"required"`
	PtTimes   db_models.PtTimes `json:"ptTimes"`
}

type PtTotalAmountRequest struct {
	SelectedTimes string  `json:"selectedTimes" binding:"required"`
	TrainerPrice  float64 `json:"trainerPrice"`
}

type PtPaymentRequest struct {
	TrainerID    uuid.UUID             `json:"trainerId" binding:"required"`
	UserID       uuid.UUID             `json:"userId" binding:"required"`
	PtTimes      db_models.PtTimes     `json:"ptTimes" binding:"required"`
	PaymentType  db_models.PaymentType `json:"paymentType"`
	Amount       float64               `json:"amount"`
	IsMembership bool                  `json:"isMembership"`
}

type ApprovePaymentRequest struct {
	PaymentType db_models.PaymentType `json:"paymentType" binding:"required"`
}

type PaymentIDRequest struct {
	PaymentID uuid.UUID `json:"paymentId" binding:"required"`
}
