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

type UserServiceInterface interface {
	Signup(ctx context.Context, request request_models.UserSignupRequest) (*db_models.User, error)
	Withdraw(ctx context.Context, principal *utils.Principal) error
	ReadProfile(ctx context.Context, principal *utils.Principal) (*response_models.ReadUserResponse, error)
	UpdateProfile(ctx context.Context, principal *utils.Principal, request request_models.UpdateUserProfileRequest) (*response_models.ReadUserResponse, error)
	UpdatePassword(ctx context.Context, principal *utils.Principal, request request_models.UpdatePasswordRequest) error
}

type UserService struct {
	userRepo   repositories.UserRepository
	tokenStore RefreshTokenStore
	retention  time.Duration
	now        func() time.Time
}

func NewUserService(userRepo repositories.UserRepository, tokenStore RefreshTokenStore, retention time.Duration) UserServiceInterface {
	return &UserService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		retention:  retention,
		now:        time.Now,
	}
}

// Signup reactivates a withdrawn account with the same account id instead of inserting a new row.
func (s *UserService) Signup(ctx context.Context, request request_models.UserSignupRequest) (*db_models.User, error) {
	if request.Password != request.ConfirmPassword {
		return nil, utils.ErrInvalidInput
	}

	if err := s.checkDuplicates(ctx, request); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	withdrawn, err := s.userRepo.FindByAccountIDAndStatus(ctx, request.AccountID, db_models.AccountStatusDeleted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if withdrawn != nil {
		withdrawn.Reactivate(hashedPassword)
		if err := s.userRepo.Save(ctx, withdrawn); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Ctx(ctx).Info().Str("account_id", withdrawn.AccountID).Msg("user reactivated")
		return withdrawn, nil
	}

	var balance float64
	if request.Balance != nil {
		balance = *request.Balance
	}

	user := &db_models.User{
		Account: db_models.Account{
			AccountID:   request.AccountID,
			Password:    hashedPassword,
			Email:       request.Email,
			PhoneNumber: request.PhoneNumber,
			Nickname:    request.Nickname,
			Status:      db_models.AccountStatusActive,
			Role:        utils.RoleUser,
		},
		UserName:                    request.UserName,
		Balance:                     balance,
		ResidentRegistrationNumber:  request.ResidentRegistrationNumber,
		ForeignerRegistrationNumber: request.ForeignerRegistrationNumber,
		IsForeigner:                 request.IsForeigner,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *UserService) checkDuplicates(ctx context.Context, request request_models.UserSignupRequest) error {
	byAccount, err := s.userRepo.FindByAccountIDAndStatus(ctx, request.AccountID, db_models.AccountStatusActive)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if byAccount != nil {
		return utils.ErrDuplicateUsername
	}

	byEmail, err := s.userRepo.FindByEmailAndStatus(ctx, request.Email, db_models.AccountStatusActive)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if byEmail != nil {
		return utils.ErrDuplicateEmail
	}

	byPhone, err := s.userRepo.FindByPhoneNumberAndStatus(ctx, request.PhoneNumber, db_models.AccountStatusActive)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if byPhone != nil {
		return utils.ErrDuplicateUser
	}
	return nil
}

func (s *UserService) Withdraw(ctx context.Context, principal *utils.Principal) error {
	user, err := s.activeUser(ctx, principal)
	if err != nil {
		return err
	}

	user.SoftDelete(s.now(), s.retention)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.tokenStore.Delete(ctx, refreshKey(utils.RoleUser, user.AccountID)); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("refresh token not revoked")
	}
	return nil
}

func (s *UserService) ReadProfile(ctx context.Context, principal *utils.Principal) (*response_models.ReadUserResponse, error) {
	user, err := s.activeUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewReadUserResponse(user)
	return &resp, nil
}

// UpdateProfile requires the current password and leaves empty fields untouched.
func (s *UserService) UpdateProfile(ctx context.Context, principal *utils.Principal, request request_models.UpdateUserProfileRequest) (*response_models.ReadUserResponse, error) {
	user, err := s.activeUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !utils.PasswordMatches(user.Password, request.Password) {
		return nil, utils.ErrInvalidPassword
	}

	setIfPresent(&user.Nickname, request.Nickname)
	setIfPresent(&user.Zipcode, request.Zipcode)
	setIfPresent(&user.MainAddress, request.MainAddress)
	setIfPresent(&user.DetailedAddress, request.DetailedAddress)
	setIfPresent(&user.UserPicture, request.UserPicture)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewReadUserResponse(user)
	return &resp, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, principal *utils.Principal, request request_models.UpdatePasswordRequest) error {
	user, err := s.activeUser(ctx, principal)
	if err != nil {
		return err
	}
	if !utils.PasswordMatches(user.Password, request.OldPassword) {
		return utils.ErrInvalidPassword
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	user.Password = hashedPassword
	if err := s.userRepo.Save(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *UserService) activeUser(ctx context.Context, principal *utils.Principal) (*db_models.User, error) {
	if !principal.Is(utils.RoleUser) {
		return nil, utils.ErrForbiddenUser
	}
	user, err := s.userRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil || !user.IsActive() {
		return nil, utils.ErrNotFoundUser
	}
	return user, nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
