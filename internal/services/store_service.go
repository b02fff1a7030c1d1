package services

import (
	"context"

	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/internal/models/response_models"
	"fitple/internal/repositories"
	"fitple/pkg/utils"
	"github.com/google/uuid"
)

type StoreServiceInterface interface {
	CreateStore(ctx context.Context, principal *utils.Principal, request request_models.StoreRequest) (*response_models.StoreResponse, error)
	UpdateStore(ctx context.Context, principal *utils.Principal, storeID uuid.UUID, request request_models.StoreRequest) (*response_models.StoreResponse, error)
	DeleteStore(ctx context.Context, principal *utils.Principal, storeID uuid.UUID) error
	FindAll(ctx context.Context) ([]response_models.StoreSimpleResponse, error)
	FindByID(ctx context.Context, storeID uuid.UUID) (*response_models.StoreResponse, error)
	FindAllByOwner(ctx context.Context, principal *utils.Principal) ([]response_models.StoreSimpleResponse, error)
	FindOwnerStoreByID(ctx context.Context, principal *utils.Principal, storeID uuid.UUID) (*response_models.StoreResponse, error)
}

type StoreService struct {
	storeRepo repositories.StoreRepository
	ownerRepo repositories.OwnerRepository
}

func NewStoreService(storeRepo repositories.StoreRepository, ownerRepo repositories.OwnerRepository) StoreServiceInterface {
	return &StoreService{
		storeRepo: storeRepo,
		ownerRepo: ownerRepo,
	}
}

func (s *StoreService) CreateStore(ctx context.Context, principal *utils.Principal, request request_models.StoreRequest) (*response_models.StoreResponse, error) {
	owner, err := s.requireOwner(ctx, principal)
	if err != nil {
		return nil, err
	}

	store := &db_models.Store{OwnerID: owner.ID}
	applyStoreRequest(store, request)

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewStoreResponse(store)
	return &resp, nil
}

func (s *StoreService) UpdateStore(ctx context.Context, principal *utils.Principal, storeID uuid.UUID, request request_models.StoreRequest) (*response_models.StoreResponse, error) {
	store, err := s.ownedStore(ctx, principal, storeID)
	if err != nil {
		return nil, err
	}

	applyStoreRequest(store, request)
	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewStoreResponse(store)
	return &resp, nil
}

func (s *StoreService) DeleteStore(ctx context.Context, principal *utils.Principal, storeID uuid.UUID) error {
	store, err := s.ownedStore(ctx, principal, storeID)
	if err != nil {
		return err
	}
	if err := s.storeRepo.Delete(ctx, store); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *StoreService) FindAll(ctx context.Context) ([]response_models.StoreSimpleResponse, error) {
	stores, err := s.storeRepo.FindAllOrderByCreatedAt(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSimpleStores(stores), nil
}

func (s *StoreService) FindByID(ctx context.Context, storeID uuid.UUID) (*response_models.StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if store == nil {
		return nil, utils.ErrNotFoundStore
	}
	resp := response_models.NewStoreResponse(store)
	return &resp, nil
}

func (s *StoreService) FindAllByOwner(ctx context.Context, principal *utils.Principal) ([]response_models.StoreSimpleResponse, error) {
	owner, err := s.requireOwner(ctx, principal)
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.FindAllByOwnerIDOrderByCreatedAt(ctx, owner.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSimpleStores(stores), nil
}

func (s *StoreService) FindOwnerStoreByID(ctx context.Context, principal *utils.Principal, storeID uuid.UUID) (*response_models.StoreResponse, error) {
	store, err := s.ownedStore(ctx, principal, storeID)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewStoreResponse(store)
	return &resp, nil
}

func (s *StoreService) requireOwner(ctx context.Context, principal *utils.Principal) (*db_models.Owner, error) {
	if !principal.Is(utils.RoleOwner) {
		return nil, utils.ErrForbiddenOperation
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

// ownedStore loads a store and checks that the caller owns it.
func (s *StoreService) ownedStore(ctx context.Context, principal *utils.Principal, storeID uuid.UUID) (*db_models.Store, error) {
	owner, err := s.requireOwner(ctx, principal)
	if err != nil {
		return nil, err
	}
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if store == nil {
		return nil, utils.ErrNotFoundStore
	}
	if store.OwnerID != owner.ID {
		return nil, utils.ErrInvalidUser
	}
	return store, nil
}

func applyStoreRequest(store *db_models.Store, request request_models.StoreRequest) {
	store.StoreName = request.StoreName
	store.Address = request.Address
	store.StreetAddress = request.StreetAddress
	store.PostalCode = request.PostalCode
	store.StoreInfo = request.StoreInfo
	store.StoreHour = request.StoreHour
	store.StoreTel = request.StoreTel
}

func toSimpleStores(stores []db_models.Store) []response_models.StoreSimpleResponse {
	resp := make([]response_models.StoreSimpleResponse, 0, len(stores))
	for i := range stores {
		resp = append(resp, response_models.NewStoreSimpleResponse(&stores[i]))
	}
	return resp
}
