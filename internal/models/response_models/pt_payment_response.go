package response_models

import (
	"fitple/internal/models/db_models"
	"fitple/pkg/utils"
)

type PtTotalAmountResponse struct {
	PtTimes string  `json:"ptTimes"`
	Times   int     `json:"times"`
	Amount  float64 `json:"amount"`
}

type PtPaymentResponse struct {
	ID            string                  `json:"id"`
	TrainerID     string                  `json:"trainerId"`
	UserID        string                  `json:"userId"`
	PtTimes       db_models.PtTimes       `json:"ptTimes"`
	PaymentType   db_models.PaymentType   `json:"paymentType"`
	Amount        float64                 `json:"amount"`
	PaymentStatus db_models.PaymentStatus `json:"paymentStatus"`
	PaymentDate   string                  `json:"paymentDate"`
	ExpiryDate    string                  `json:"expiryDate"`
	IsMembership  bool                    `json:"isMembership"`
}

func NewPtPaymentResponse(p *db_models.PtPayment) PtPaymentResponse {
	return PtPaymentResponse{
		ID:            p.ID.String(),
		TrainerID:     p.TrainerID.String(),
		UserID:        p.UserID.String(),
		PtTimes:       p.PtTimes,
		PaymentType:   p.PaymentType,
		Amount:        p.Amount,
		PaymentStatus: p.PaymentStatus,
		PaymentDate:   utils.FormatLocalDateTime(p.PaymentDate),
		ExpiryDate:    utils.FormatLocalDateTime(p.ExpiryDate),
		IsMembership:  p.IsMembership,
	}
}
