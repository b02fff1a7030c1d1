package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitple/internal/metrics"
	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/internal/repositories"
	"fitple/pkg/utils"
	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FailurePolicy decides which error kind CompletePayment reports.
type FailurePolicy string

const (
	// FailurePolicyFlatten reports every failure as PAYMENT_FAILED.
	FailurePolicyFlatten FailurePolicy = "flatten"
	// FailurePolicyPreserve keeps domain error kinds and only maps unexpected errors to PAYMENT_FAILED.
	FailurePolicyPreserve FailurePolicy = "preserve"
)

type PtPaymentConfig struct {
	MaxApprovalAttempts uint
	FailurePolicy       FailurePolicy
}

var errApprovalDeclined = errors.New("approval declined")

type PtPaymentServiceInterface interface {
	ValidateTrainerAndUser(ctx context.Context, principal *utils.Principal, trainerID, userID uuid.UUID) (*db_models.Trainer, *db_models.User, error)
	CheckDuplicatePt(ctx context.Context, trainerID, userID uuid.UUID) error
	SavePtInformation(ctx context.Context, principal *utils.Principal, request request_models.PtInformationRequest) (*db_models.PtInformation, error)
	ProcessPayment(ctx context.Context, principal *utils.Principal, request request_models.PtInformationRequest) (string, error)
	ShowPaymentPage(ctx context.Context, principal *utils.Principal, ptInformationID uuid.UUID) (string, error)
	SelectPtTimes(selectedTimes string, trainerPrice float64) (db_models.PtTimes, float64, error)
	SavePayment(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (*db_models.PtPayment, error)
	ApprovePayment(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID, paymentType db_models.PaymentType) (*db_models.PtPayment, error)
	CompletePayment(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (*db_models.PtPayment, error)
	RecordEntitlement(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID) (*db_models.UserPt, error)
	PaymentCompletePage(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID) (string, error)
	CompleteAll(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (string, error)
}

type PtPaymentService struct {
	trainerRepo repositories.TrainerRepository
	userRepo    repositories.UserRepository
	infoRepo    repositories.PtInformationRepository
	paymentRepo repositories.PtPaymentRepository
	userPtRepo  repositories.UserPtRepository
	gateway     ApprovalGateway
	events      PaymentEventPublisher
	cfg         PtPaymentConfig
	now         func() time.Time
}

func NewPtPaymentService(
	trainerRepo repositories.TrainerRepository,
	userRepo repositories.UserRepository,
	infoRepo repositories.PtInformationRepository,
	paymentRepo repositories.PtPaymentRepository,
	userPtRepo repositories.UserPtRepository,
	gateway ApprovalGateway,
	events PaymentEventPublisher,
	cfg PtPaymentConfig,
) PtPaymentServiceInterface {
	if cfg.MaxApprovalAttempts == 0 {
		cfg.MaxApprovalAttempts = 5
	}
	if cfg.FailurePolicy == "" {
		cfg.FailurePolicy = FailurePolicyFlatten
	}
	return &PtPaymentService{
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
		infoRepo:    infoRepo,
		paymentRepo: paymentRepo,
		userPtRepo:  userPtRepo,
		gateway:     gateway,
		events:      events,
		cfg:         cfg,
		now:         utils.NowKST,
	}
}

func (s *PtPaymentService) ValidateTrainerAndUser(ctx context.Context, principal *utils.Principal, trainerID, userID uuid.UUID) (*db_models.Trainer, *db_models.User, error) {
	if err := requireSelf(principal, userID); err != nil {
		return nil, nil, err
	}
	return s.validateTrainerAndUser(ctx, trainerID, userID)
}

// validateTrainerAndUser reports a missing trainer and user as one combined error.
func (s *PtPaymentService) validateTrainerAndUser(ctx context.Context, trainerID, userID uuid.UUID) (*db_models.Trainer, *db_models.User, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, trainerID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}

	switch {
	case trainer == nil && user == nil:
		return nil, nil, utils.ErrTrainerAndUserNotFound
	case trainer == nil:
		return nil, nil, utils.ErrTrainerNotFound
	case user == nil:
		return nil, nil, utils.ErrUserNotFound
	}
	return trainer, user, nil
}

func (s *PtPaymentService) CheckDuplicatePt(ctx context.Context, trainerID, userID uuid.UUID) error {
	active, err := s.userPtRepo.FindAllByTrainerIDAndUserIDAndIsActive(ctx, trainerID, userID, true)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if len(active) > 0 {
		return utils.ErrReservationConflict
	}
	return nil
}

func (s *PtPaymentService) SavePtInformation(ctx context.Context, principal *utils.Principal, request request_models.PtInformationRequest) (*db_models.PtInformation, error) {
	trainer, _, err := s.ValidateTrainerAndUser(ctx, principal, request.TrainerID, request.UserID)
	if err != nil {
		return nil, err
	}

	tier := request.PtTimes
	if tier == "" {
		tier = db_models.PtTimesTen
	}
	if !tier.Valid() {
		return nil, utils.ErrInvalidInput
	}

	info := &db_models.PtInformation{
		TrainerID:     trainer.ID,
		UserID:        request.UserID,
		PtTimes:       tier,
		PtPrice:       trainer.PtPrice,
		IsMembership:  trainer.IsMembership,
		PaymentStatus: db_models.PaymentStatusPending,
	}
	if err := s.infoRepo.Create(ctx, info); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return info, nil
}

// ProcessPayment validates, checks for an active booking, stores the quote draft and renders the payment page.
func (s *PtPaymentService) ProcessPayment(ctx context.Context, principal *utils.Principal, request request_models.PtInformationRequest) (string, error) {
	trainer, user, err := s.ValidateTrainerAndUser(ctx, principal, request.TrainerID, request.UserID)
	if err != nil {
		return "", err
	}
	if err := s.CheckDuplicatePt(ctx, request.TrainerID, request.UserID); err != nil {
		return "", err
	}

	info, err := s.SavePtInformation(ctx, principal, request)
	if err != nil {
		return "", err
	}
	return FormatPaymentPage(trainer.TrainerName, user.UserName, info), nil
}

func (s *PtPaymentService) ShowPaymentPage(ctx context.Context, principal *utils.Principal, ptInformationID uuid.UUID) (string, error) {
	info, err := s.infoRepo.FindByID(ctx, ptInformationID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if info == nil {
		return "", utils.ErrPaymentNotFound
	}
	if err := requireSelf(principal, info.UserID); err != nil {
		return "", err
	}

	trainer, user, err := s.validateTrainerAndUser(ctx, info.TrainerID, info.UserID)
	if err != nil {
		return "", err
	}
	return FormatPaymentPage(trainer.TrainerName, user.UserName, info), nil
}

func (s *PtPaymentService) SelectPtTimes(selectedTimes string, trainerPrice float64) (db_models.PtTimes, float64, error) {
	tier, err := SelectPtTimes(selectedTimes)
	if err != nil {
		return "", 0, err
	}
	return tier, ComputeTotal(trainerPrice, tier), nil
}

// SavePayment persists a PENDING payment with an undecided payment type.
func (s *PtPaymentService) SavePayment(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (*db_models.PtPayment, error) {
	if err := requireSelf(principal, request.UserID); err != nil {
		return nil, err
	}
	if request.Amount <= 0 {
		return nil, utils.ErrInvalidInput
	}

	payment, err := s.savePayment(ctx, request)
	if err != nil {
		if _, ok := utils.AsAppError(err); ok {
			return nil, err
		}
		log.Ctx(ctx).Error().Err(err).Msg("save payment failed")
		return nil, utils.ErrPaymentFailed
	}
	return payment, nil
}

func (s *PtPaymentService) savePayment(ctx context.Context, request request_models.PtPaymentRequest) (*db_models.PtPayment, error) {
	if _, _, err := s.validateTrainerAndUser(ctx, request.TrainerID, request.UserID); err != nil {
		return nil, err
	}
	if !request.PtTimes.Valid() {
		return nil, utils.ErrInvalidInput
	}
	if err := s.CheckDuplicatePt(ctx, request.TrainerID, request.UserID); err != nil {
		return nil, err
	}

	paymentDate := s.now()
	payment := &db_models.PtPayment{
		TrainerID:     request.TrainerID,
		UserID:        request.UserID,
		PtTimes:       request.PtTimes,
		PaymentType:   db_models.PaymentTypeUndefined,
		Amount:        request.Amount,
		PaymentStatus: db_models.PaymentStatusPending,
		PaymentDate:   paymentDate,
		ExpiryDate:    ExpiryDate(paymentDate, request.PtTimes),
		IsMembership:  request.IsMembership,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ApprovePayment moves a PENDING payment to APPROVED in place.
func (s *PtPaymentService) ApprovePayment(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID, paymentType db_models.PaymentType) (*db_models.PtPayment, error) {
	if !paymentType.Supported() {
		return nil, utils.ErrUnsupportedPaymentType
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}
	if err := requireSelf(principal, payment.UserID); err != nil {
		return nil, err
	}
	if payment.PaymentStatus.Terminal() {
		return nil, utils.ErrInvalidPaymentStatus
	}

	payment.PaymentStatus = db_models.PaymentStatusApproved
	payment.PaymentType = paymentType
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Ctx(ctx).Info().Str("payment_id", payment.ID.String()).Str("payment_type", string(paymentType)).Msg("payment approved")
	return payment, nil
}

// CompletePayment charges the caller through the approval gateway and stores a COMPLETED payment.
func (s *PtPaymentService) CompletePayment(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (*db_models.PtPayment, error) {
	payment, err := s.completePayment(ctx, principal, request)
	if err != nil {
		return nil, s.reportFailure(ctx, err)
	}

	metrics.CompletedPayments.Inc()
	s.publishCompleted(ctx, payment)
	return payment, nil
}

func (s *PtPaymentService) completePayment(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (*db_models.PtPayment, error) {
	if err := requireSelf(principal, request.UserID); err != nil {
		return nil, err
	}

	trainer, _, err := s.validateTrainerAndUser(ctx, request.TrainerID, principal.ID)
	if err != nil {
		return nil, err
	}
	if err := s.CheckDuplicatePt(ctx, request.TrainerID, principal.ID); err != nil {
		return nil, err
	}
	if !request.PtTimes.Valid() || !request.PaymentType.Supported() {
		return nil, utils.ErrInvalidInput
	}

	totalAmount := ComputeTotal(trainer.PtPrice, request.PtTimes)
	if request.Amount > 0 && request.Amount != totalAmount {
		return nil, utils.ErrPaymentMismatch
	}

	result, err := s.approveWithRetry(ctx, principal.ID, totalAmount)
	if err != nil {
		return nil, err
	}

	receipt, err := marshalReceipt(result)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("user_id", principal.ID.String()).Msg("approval receipt not encoded")
	}

	paymentDate := s.now()
	payment := &db_models.PtPayment{
		TrainerID:     trainer.ID,
		UserID:        principal.ID,
		PtTimes:       request.PtTimes,
		PaymentType:   request.PaymentType,
		Amount:        totalAmount,
		PaymentStatus: db_models.PaymentStatusCompleted,
		PaymentDate:   paymentDate,
		ExpiryDate:    ExpiryDate(paymentDate, request.PtTimes),
		IsMembership:  request.IsMembership,
		Receipt:       receipt,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Str("payment_id", payment.ID.String()).Float64("amount", totalAmount).Msg("payment completed")
	return payment, nil
}

// approveWithRetry calls the gateway up to MaxApprovalAttempts times with no delay.
// Exhaustion reports PAYMENT_APPROVAL_FAILED when the last attempt was a decline and PAYMENT_FAILED when it errored.
func (s *PtPaymentService) approveWithRetry(ctx context.Context, userID uuid.UUID, amount float64) (*ApprovalResult, error) {
	var (
		result       *ApprovalResult
		attempts     uint
		lastDeclined bool
	)

	err := retry.Do(
		func() error {
			attempts++
			metrics.ApprovalAttempts.Inc()

			res, err := s.gateway.Approve(ctx, userID, amount)
			if err != nil {
				lastDeclined = false
				return err
			}
			if res == nil || !res.Approved {
				lastDeclined = true
				return errApprovalDeclined
			}
			result = res
			return nil
		},
		retry.Attempts(s.cfg.MaxApprovalAttempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			if n+1 >= s.cfg.MaxApprovalAttempts {
				return
			}
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n+1).Msg("payment approval retry")
		}),
	)
	if err == nil {
		return result, nil
	}

	log.Ctx(ctx).Error().Err(err).Uint("attempts", attempts).Msg("payment approval exhausted")
	if lastDeclined {
		return nil, utils.ErrPaymentApprovalFailed
	}
	return nil, utils.ErrPaymentFailed
}

func (s *PtPaymentService) reportFailure(ctx context.Context, err error) error {
	appErr, ok := utils.AsAppError(err)
	if !ok {
		log.Ctx(ctx).Error().Err(err).Msg("complete payment failed")
		appErr = utils.ErrPaymentFailed
	}

	if s.cfg.FailurePolicy == FailurePolicyFlatten && appErr != utils.ErrPaymentFailed {
		log.Ctx(ctx).Warn().Str("code", appErr.Code).Msg("complete payment failure flattened")
		appErr = utils.ErrPaymentFailed
	}

	metrics.PaymentFailures.WithLabelValues(appErr.Code).Inc()
	return appErr
}

func (s *PtPaymentService) publishCompleted(ctx context.Context, payment *db_models.PtPayment) {
	err := s.events.PublishPaymentCompleted(ctx, PaymentCompletedEvent{
		PaymentID:   payment.ID.String(),
		TrainerID:   payment.TrainerID.String(),
		UserID:      payment.UserID.String(),
		PtTimes:     string(payment.PtTimes),
		PaymentType: string(payment.PaymentType),
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		ExpiryDate:  payment.ExpiryDate,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("payment_id", payment.ID.String()).Msg("payment completed event not published")
	}
}

func (s *PtPaymentService) RecordEntitlement(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID) (*db_models.UserPt, error) {
	payment, err := s.ownedPayment(ctx, principal, paymentID)
	if err != nil {
		return nil, err
	}
	return s.recordEntitlement(ctx, payment)
}

// recordEntitlement appends an active UserPt copied from a settled payment.
func (s *PtPaymentService) recordEntitlement(ctx context.Context, payment *db_models.PtPayment) (*db_models.UserPt, error) {
	if payment.PaymentStatus != db_models.PaymentStatusCompleted && payment.PaymentStatus != db_models.PaymentStatusApproved {
		return nil, utils.ErrInvalidPaymentStatus
	}

	userPt := &db_models.UserPt{
		TrainerID:     payment.TrainerID,
		UserID:        payment.UserID,
		PtPaymentID:   payment.ID,
		PtTimes:       payment.PtTimes,
		PaymentType:   payment.PaymentType,
		Amount:        payment.Amount,
		PaymentStatus: payment.PaymentStatus,
		PaymentDate:   payment.PaymentDate,
		ExpiryDate:    payment.ExpiryDate,
		IsMembership:  payment.IsMembership,
		IsActive:      true,
	}
	if err := s.userPtRepo.Create(ctx, userPt); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return userPt, nil
}

func (s *PtPaymentService) PaymentCompletePage(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID) (string, error) {
	payment, err := s.ownedPayment(ctx, principal, paymentID)
	if err != nil {
		return "", err
	}
	return s.paymentCompletePage(ctx, payment)
}

func (s *PtPaymentService) paymentCompletePage(ctx context.Context, payment *db_models.PtPayment) (string, error) {
	trainer, user, err := s.validateTrainerAndUser(ctx, payment.TrainerID, payment.UserID)
	if err != nil {
		return "", err
	}
	return FormatPaymentCompletePage(trainer.TrainerName, user.UserName, payment), nil
}

// CompleteAll completes the payment, records the entitlement and renders the confirmation.
func (s *PtPaymentService) CompleteAll(ctx context.Context, principal *utils.Principal, request request_models.PtPaymentRequest) (string, error) {
	payment, err := s.CompletePayment(ctx, principal, request)
	if err != nil {
		return "", err
	}
	if _, err := s.recordEntitlement(ctx, payment); err != nil {
		return "", err
	}

	log.Ctx(ctx).Info().Str("payment_id", payment.ID.String()).Str("user_id", principal.ID.String()).Msg("payment flow completed")
	return s.paymentCompletePage(ctx, payment)
}

func (s *PtPaymentService) ownedPayment(ctx context.Context, principal *utils.Principal, paymentID uuid.UUID) (*db_models.PtPayment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}
	if err := requireSelf(principal, payment.UserID); err != nil {
		return nil, err
	}
	return payment, nil
}

// requireSelf rejects callers acting on another user's behalf.
func requireSelf(principal *utils.Principal, userID uuid.UUID) error {
	if principal == nil || principal.ID != userID {
		return utils.ErrForbiddenUser
	}
	return nil
}

// marshalReceipt encodes the gateway answer stored on the payment row.
func marshalReceipt(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal receipt: %w", err)
	}
	return b, nil
}
