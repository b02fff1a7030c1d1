package db_models

type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "ACTIVE"
	AccountStatusDeleted AccountStatus = "DELETED"
)

type PtTimes string

const (
	PtTimesTen    PtTimes = "TEN_TIMES"
	PtTimesTwenty PtTimes = "TWENTY_TIMES"
	PtTimesThirty PtTimes = "THIRTY_TIMES"
	PtTimesSixty  PtTimes = "SIXTY_TIMES"
)

// PtTimesTiers lists the tiers in declaration order.
var PtTimesTiers = []PtTimes{PtTimesTen, PtTimesTwenty, PtTimesThirty, PtTimesSixty}

// Times is the session count of the tier, 0 for an unknown tier.
func (t PtTimes) Times() int {
	switch t {
	case PtTimesTen:
		return 10
	case PtTimesTwenty:
		return 20
	case PtTimesThirty:
		return 30
	case PtTimesSixty:
		return 60
	default:
		return 0
	}
}

func (t PtTimes) Valid() bool { return t.Times() > 0 }

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCanceled  PaymentStatus = "CANCELED"
	PaymentStatusApproved  PaymentStatus = "APPROVED"
)

// Terminal reports whether no further transition is allowed from s.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusApproved, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeUndefined  PaymentType = "UNDEFINED"
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard  PaymentType = "DEBIT_CARD"
	PaymentTypeCash       PaymentType = "CASH"
)

// Supported reports whether t is a method a payment can be settled with.
func (t PaymentType) Supported() bool {
	switch t {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypeCash:
		return true
	}
	return false
}
