package services

import (
	"context"
	"fmt"

	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/internal/models/response_models"
	"fitple/internal/repositories"
	"fitple/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest, currentToken string) (*response_models.TokenResponse, error)
	Logout(ctx context.Context, principal *utils.Principal) error
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error)
	ResolvePrincipal(ctx context.Context, accountID, role string) (*utils.Principal, error)
}

type AuthService struct {
	userRepo    repositories.UserRepository
	ownerRepo   repositories.OwnerRepository
	trainerRepo repositories.TrainerRepository
	tokens      *utils.TokenProvider
	tokenStore  RefreshTokenStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	ownerRepo repositories.OwnerRepository,
	trainerRepo repositories.TrainerRepository,
	tokens *utils.TokenProvider,
	tokenStore RefreshTokenStore,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		ownerRepo:   ownerRepo,
		trainerRepo: trainerRepo,
		tokens:      tokens,
		tokenStore:  tokenStore,
	}
}

// Login looks the account id up among users, owners and trainers in that order.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest, currentToken string) (*response_models.TokenResponse, error) {
	if currentToken != "" && a.tokens.Validate(currentToken) {
		return nil, utils.ErrAlreadyLoggedIn
	}

	account, err := a.findAccount(ctx, request.AccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !utils.PasswordMatches(account.Password, request.Password) {
		return nil, utils.ErrLoginFailed
	}
	if !account.IsActive() {
		return nil, utils.ErrWithdrawnAccount
	}

	accessToken, err := a.tokens.IssueAccess(account.AccountID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := a.tokens.IssueRefresh(account.AccountID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := a.tokenStore.Save(ctx, refreshKey(account.Role, account.AccountID), refreshToken, a.tokens.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	log.Ctx(ctx).Info().Str("account_id", account.AccountID).Str("role", account.Role).Msg("login")

	return &response_models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         account.Role,
	}, nil
}

func (a *AuthService) Logout(ctx context.Context, principal *utils.Principal) error {
	key := refreshKey(principal.Role, principal.AccountID)
	stored, err := a.tokenStore.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read refresh token: %w", err)
	}
	if stored == "" {
		return utils.ErrAlreadyLoggedOut
	}
	return a.tokenStore.Delete(ctx, key)
}

func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenResponse, error) {
	claims, err := a.tokens.Parse(refreshToken)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		return nil, utils.ErrUnauthorized
	}

	stored, err := a.tokenStore.Get(ctx, refreshKey(claims.Role, claims.Subject))
	if err != nil {
		return nil, fmt.Errorf("read refresh token: %w", err)
	}
	if stored == "" || stored != refreshToken {
		return nil, utils.ErrUnauthorized
	}

	if _, err := a.ResolvePrincipal(ctx, claims.Subject, claims.Role); err != nil {
		return nil, err
	}

	accessToken, err := a.tokens.IssueAccess(claims.Subject, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &response_models.TokenResponse{AccessToken: accessToken, Role: claims.Role}, nil
}

// ResolvePrincipal only resolves ACTIVE accounts.
func (a *AuthService) ResolvePrincipal(ctx context.Context, accountID, role string) (*utils.Principal, error) {
	var (
		id      uuid.UUID
		account *db_models.Account
	)

	switch role {
	case utils.RoleUser:
		user, err := a.userRepo.FindByAccountIDAndStatus(ctx, accountID, db_models.AccountStatusActive)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if user != nil {
			id, account = user.ID, &user.Account
		}
	case utils.RoleOwner:
		owner, err := a.ownerRepo.FindByAccountIDAndStatus(ctx, accountID, db_models.AccountStatusActive)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if owner != nil {
			id, account = owner.ID, &owner.Account
		}
	case utils.RoleTrainer:
		trainer, err := a.trainerRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if trainer != nil && trainer.IsActive() {
			id, account = trainer.ID, &trainer.Account
		}
	}

	if account == nil {
		return nil, utils.ErrUnauthorized
	}
	return &utils.Principal{ID: id, AccountID: account.AccountID, Role: account.Role}, nil
}

func (a *AuthService) findAccount(ctx context.Context, accountID string) (*db_models.Account, error) {
	user, err := a.userRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return &user.Account, nil
	}

	owner, err := a.ownerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		return &owner.Account, nil
	}

	trainer, err := a.trainerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if trainer != nil {
		return &trainer.Account, nil
	}
	return nil, nil
}
