package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ApprovalResult is what the gateway answers for one capture attempt.
type ApprovalResult struct {
	Approved      bool      `json:"approved"`
	TransactionID string    `json:"transactionId,omitempty"`
	ApprovedAt    time.Time `json:"approvedAt"`
}

// ApprovalGateway captures funds for a payment. An error means a transient failure worth retrying.
type ApprovalGateway interface {
	Approve(ctx context.Context, userID uuid.UUID, amount float64) (*ApprovalResult, error)
}

type stubApprovalGateway struct {
	now func() time.Time
}

// NewStubApprovalGateway returns a gateway that approves every request.
func NewStubApprovalGateway() ApprovalGateway {
	return &stubApprovalGateway{now: time.Now}
}

func (g *stubApprovalGateway) Approve(ctx context.Context, userID uuid.UUID, amount float64) (*ApprovalResult, error) {
	log.Ctx(ctx).Info().Str("user_id", userID.String()).Float64("amount", amount).Msg("payment approved")
	return &ApprovalResult{
		Approved:      true,
		TransactionID: uuid.NewString(),
		ApprovedAt:    g.now(),
	}, nil
}
