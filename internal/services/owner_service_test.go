package services

import (
	"context"
	"testing"
	"time"

	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerSignupRequest() request_models.OwnerSignupRequest {
	return request_models.OwnerSignupRequest{
		OwnerName:                  "박점주",
		ResidentRegistrationNumber: "9001011234567",
		AccountID:                  "owner1",
		Password:                   "password1",
		ConfirmPassword:            "password1",
		Email:                      "owner@example.com",
		OwnerPhoneNumber:           "01099998888",
		BusinessRegistrationNumber: "1234567890",
		BusinessName:               "핏플짐",
		Zipcode:                    "06236",
		MainAddress:                "서울 강남구 테헤란로 1",
		DetailedAddress:            "2층",
	}
}

func TestOwnerSignup(t *testing.T) {
	repo := newFakeOwnerRepo()
	svc := NewOwnerService(repo, newFakeTokenStore(), 30*24*time.Hour)
	ctx := context.Background()

	noRegistration := ownerSignupRequest()
	noRegistration.ResidentRegistrationNumber = ""
	_, err := svc.Signup(ctx, noRegistration)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	owner, err := svc.Signup(ctx, ownerSignupRequest())
	require.NoError(t, err)
	assert.Equal(t, utils.RoleOwner, owner.Role)
	assert.Equal(t, "01099998888", owner.PhoneNumber)

	_, err = svc.Signup(ctx, ownerSignupRequest())
	assert.ErrorIs(t, err, utils.ErrDuplicateUsername)

	samePhone := ownerSignupRequest()
	samePhone.AccountID = "owner2"
	samePhone.Email = "owner2@example.com"
	_, err = svc.Signup(ctx, samePhone)
	assert.ErrorIs(t, err, utils.ErrDuplicateUser)
}

func TestOwnerWithdrawAndReactivate(t *testing.T) {
	repo := newFakeOwnerRepo()
	svc := NewOwnerService(repo, newFakeTokenStore(), 30*24*time.Hour)
	ctx := context.Background()

	owner, err := svc.Signup(ctx, ownerSignupRequest())
	require.NoError(t, err)
	principal := &utils.Principal{ID: owner.ID, AccountID: owner.AccountID, Role: utils.RoleOwner}

	require.NoError(t, svc.Withdraw(ctx, principal))
	stored, _ := repo.FindByID(ctx, owner.ID)
	assert.Equal(t, db_models.AccountStatusDeleted, stored.Status)
	assert.NotNil(t, stored.ScheduledDeletionDate)

	again, err := svc.Signup(ctx, ownerSignupRequest())
	require.NoError(t, err)
	assert.Equal(t, owner.ID, again.ID)
	assert.Nil(t, again.ScheduledDeletionDate)

	profile, err := svc.ReadProfile(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, "owner1", profile.AccountID)
}
