package services

import (
	"context"
	"testing"

	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeOwner(accountID string) db_models.Owner {
	return db_models.Owner{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Account:   db_models.Account{AccountID: accountID, Status: db_models.AccountStatusActive, Role: utils.RoleOwner},
	}
}

func ownerPrincipal(o db_models.Owner) *utils.Principal {
	return &utils.Principal{ID: o.ID, AccountID: o.AccountID, Role: utils.RoleOwner}
}

func TestStoreService_OwnerLifecycle(t *testing.T) {
	mine, theirs := activeOwner("owner1"), activeOwner("owner2")
	svc := NewStoreService(newFakeStoreRepo(), newFakeOwnerRepo(mine, theirs))
	ctx := context.Background()

	created, err := svc.CreateStore(ctx, ownerPrincipal(mine), request_models.StoreRequest{StoreName: "핏플 강남점", StoreTel: "021234567"})
	require.NoError(t, err)
	assert.Equal(t, mine.ID.String(), created.OwnerID)

	storeID := uuid.MustParse(created.ID)
	updated, err := svc.UpdateStore(ctx, ownerPrincipal(mine), storeID, request_models.StoreRequest{StoreName: "핏플 역삼점"})
	require.NoError(t, err)
	assert.Equal(t, "핏플 역삼점", updated.StoreName)

	_, err = svc.UpdateStore(ctx, ownerPrincipal(theirs), storeID, request_models.StoreRequest{StoreName: "x"})
	assert.ErrorIs(t, err, utils.ErrInvalidUser)
	assert.ErrorIs(t, svc.DeleteStore(ctx, ownerPrincipal(theirs), storeID), utils.ErrInvalidUser)

	found, err := svc.FindOwnerStoreByID(ctx, ownerPrincipal(mine), storeID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	require.NoError(t, svc.DeleteStore(ctx, ownerPrincipal(mine), storeID))
	_, err = svc.FindByID(ctx, storeID)
	assert.ErrorIs(t, err, utils.ErrNotFoundStore)
	assert.ErrorIs(t, svc.DeleteStore(ctx, ownerPrincipal(mine), storeID), utils.ErrNotFoundStore)
}

func TestStoreService_OnlyOwnersCreate(t *testing.T) {
	svc := NewStoreService(newFakeStoreRepo(), newFakeOwnerRepo())
	user := &utils.Principal{ID: uuid.New(), Role: utils.RoleUser}

	_, err := svc.CreateStore(context.Background(), user, request_models.StoreRequest{StoreName: "x"})
	assert.ErrorIs(t, err, utils.ErrForbiddenOperation)
}

func TestStoreService_ListsInCreationOrder(t *testing.T) {
	mine, theirs := activeOwner("owner1"), activeOwner("owner2")
	svc := NewStoreService(newFakeStoreRepo(), newFakeOwnerRepo(mine, theirs))
	ctx := context.Background()

	for _, name := range []string{"A", "B"} {
		_, err := svc.CreateStore(ctx, ownerPrincipal(mine), request_models.StoreRequest{StoreName: name})
		require.NoError(t, err)
	}
	_, err := svc.CreateStore(ctx, ownerPrincipal(theirs), request_models.StoreRequest{StoreName: "C"})
	require.NoError(t, err)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{all[0].StoreName, all[1].StoreName, all[2].StoreName})

	own, err := svc.FindAllByOwner(ctx, ownerPrincipal(mine))
	require.NoError(t, err)
	assert.Len(t, own, 2)
}
