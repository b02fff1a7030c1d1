package services

import (
	"context"
	"time"

	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/internal/models/response_models"
	"fitple/internal/repositories"
	"fitple/pkg/utils"
	"github.com/rs/zerolog/log"
)

type OwnerServiceInterface interface {
	Signup(ctx context.Context, request request_models.OwnerSignupRequest) (*db_models.Owner, error)
	Withdraw(ctx context.Context, principal *utils.Principal) error
	ReadProfile(ctx context.Context, principal *utils.Principal) (*response_models.ReadOwnerResponse, error)
	UpdateProfile(ctx context.Context, principal *utils.Principal, request request_models.UpdateOwnerProfileRequest) (*response_models.ReadOwnerResponse, error)
	UpdatePassword(ctx context.Context, principal *utils.Principal, request request_models.UpdatePasswordRequest) error
}

type OwnerService struct {
	ownerRepo  repositories.OwnerRepository
	tokenStore RefreshTokenStore
	retention  time.Duration
	now        func() time.Time
}

func NewOwnerService(ownerRepo repositories.OwnerRepository, tokenStore RefreshTokenStore, retention time.Duration) OwnerServiceInterface {
	return &OwnerService{
		ownerRepo:  ownerRepo,
		tokenStore: tokenStore,
		retention:  retention,
		now:        time.Now,
	}
}

func (s *OwnerService) Signup(ctx context.Context, request request_models.OwnerSignupRequest) (*db_models.Owner, error) {
	if request.ResidentRegistrationNumber == "" && request.ForeignerRegistrationNumber == "" {
		return nil, utils.ErrInvalidInput
	}
	if request.Password != request.ConfirmPassword {
		return nil, utils.ErrInvalidInput
	}

	byAccount, err := s.ownerRepo.FindByAccountIDAndStatus(ctx, request.AccountID, db_models.AccountStatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if byAccount != nil {
		return nil, utils.ErrDuplicateUsername
	}
	byEmail, err := s.ownerRepo.FindByEmailAndStatus(ctx, request.Email, db_models.AccountStatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if byEmail != nil {
		return nil, utils.ErrDuplicateEmail
	}
	byPhone, err := s.ownerRepo.FindByPhoneNumberAndStatus(ctx, request.OwnerPhoneNumber, db_models.AccountStatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if byPhone != nil {
		return nil, utils.ErrDuplicateUser
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	withdrawn, err := s.ownerRepo.FindByAccountIDAndStatus(ctx, request.AccountID, db_models.AccountStatusDeleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if withdrawn != nil {
		withdrawn.Reactivate(hashedPassword)
		if err := s.ownerRepo.Save(ctx, withdrawn); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Ctx(ctx).Info().Str("account_id", withdrawn.AccountID).Msg("owner reactivated")
		return withdrawn, nil
	}

	owner := &db_models.Owner{
		Account: db_models.Account{
			AccountID:   request.AccountID,
			Password:    hashedPassword,
			Email:       request.Email,
			PhoneNumber: request.OwnerPhoneNumber,
			Nickname:    request.Nickname,
			Status:      db_models.AccountStatusActive,
			Role:        utils.RoleOwner,
		},
		OwnerName:                   request.OwnerName,
		ResidentRegistrationNumber:  request.ResidentRegistrationNumber,
		ForeignerRegistrationNumber: request.ForeignerRegistrationNumber,
		IsForeigner:                 request.IsForeigner,
		BusinessRegistrationNumber:  request.BusinessRegistrationNumber,
		BusinessName:                request.BusinessName,
		Zipcode:                     request.Zipcode,
		MainAddress:                 request.MainAddress,
		DetailedAddress:             request.DetailedAddress,
	}

	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return owner, nil
}

func (s *OwnerService) Withdraw(ctx context.Context, principal *utils.Principal) error {
	owner, err := s.activeOwner(ctx, principal)
	if err != nil {
		return err
	}

	owner.SoftDelete(s.now(), s.retention)
	if err := s.ownerRepo.Save(ctx, owner); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.tokenStore.Delete(ctx, refreshKey(utils.RoleOwner, owner.AccountID)); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("refresh token not revoked")
	}
	return nil
}

func (s *OwnerService) ReadProfile(ctx context.Context, principal *utils.Principal) (*response_models.ReadOwnerResponse, error) {
	owner, err := s.activeOwner(ctx, principal)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewReadOwnerResponse(owner)
	return &resp, nil
}

func (s *OwnerService) UpdateProfile(ctx context.Context, principal *utils.Principal, request request_models.UpdateOwnerProfileRequest) (*response_models.ReadOwnerResponse, error) {
	owner, err := s.activeOwner(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !utils.PasswordMatches(owner.Password, request.Password) {
		return nil, utils.ErrInvalidPassword
	}

	setIfPresent(&owner.Nickname, request.Nickname)
	setIfPresent(&owner.Email, request.Email)
	setIfPresent(&owner.OwnerPicture, request.OwnerPicture)
	setIfPresent(&owner.Zipcode, request.Zipcode)
	setIfPresent(&owner.MainAddress, request.MainAddress)
	setIfPresent(&owner.DetailedAddress, request.DetailedAddress)
	setIfPresent(&owner.PhoneNumber, request.OwnerPhoneNumber)

	if err := s.ownerRepo.Save(ctx, owner); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewReadOwnerResponse(owner)
	return &resp, nil
}

func (s *OwnerService) UpdatePassword(ctx context.Context, principal *utils.Principal, request request_models.UpdatePasswordRequest) error {
	owner, err := s.activeOwner(ctx, principal)
	if err != nil {
		return err
	}
	if !utils.PasswordMatches(owner.Password, request.OldPassword) {
		return utils.ErrInvalidPassword
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	owner.Password = hashedPassword
	if err := s.ownerRepo.Save(ctx, owner); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *OwnerService) activeOwner(ctx context.Context, principal *utils.Principal) (*db_models.Owner, error) {
	if !principal.Is(utils.RoleOwner) {
		return nil, utils.ErrForbiddenUser
	}
	owner, err := s.ownerRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if owner == nil || !owner.IsActive() {
		return nil, utils.ErrNotFoundOwner
	}
	return owner, nil
}
