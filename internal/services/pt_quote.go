package services

import (
	"fmt"
	"strings"
	"time"

	"fitple/internal/models/db_models"
	"fitple/pkg/utils"
)

// SelectPtTimes matches a tier name case-insensitively.
func SelectPtTimes(label string) (db_models.PtTimes, error) {
	for _, tier := range db_models.PtTimesTiers {
		if strings.EqualFold(string(tier), label) {
			return tier, nil
		}
	}
	return "", utils.ErrInvalidInput
}

func ComputeTotal(unitPrice float64, tier db_models.PtTimes) float64 {
	return unitPrice * float64(tier.Times())
}

// ExpiryDate adds one day per full 30 sessions, so a 10 or 20 session tier expires on the payment date.
func ExpiryDate(paymentDate time.Time, tier db_models.PtTimes) time.Time {
	return paymentDate.AddDate(0, 0, tier.Times()/30)
}

func FormatPaymentPage(trainerName, userName string, info *db_models.PtInformation) string {
	return fmt.Sprintf("결제 화면\n트레이너: %s\n유저: %s\nPT 횟수: %d\n금액: %.2f\n회원권: %t",
		trainerName,
		userName,
		info.PtTimes.Times(),
		info.PtPrice,
		info.IsMembership,
	)
}

func FormatPaymentCompletePage(trainerName, userName string, payment *db_models.PtPayment) string {
	return fmt.Sprintf("결제가 성공적으로 완료되었습니다!\n트레이너: %s\n유저: %s\nPT 횟수: %d\n금액: %.2f\n결제 일자: %s\n만료 일자: %s\n회원권: %t",
		trainerName,
		userName,
		payment.PtTimes.Times(),
		payment.Amount,
		utils.FormatLocalDateTime(payment.PaymentDate),
		utils.FormatLocalDateTime(payment.ExpiryDate),
		payment.IsMembership,
	)
}
