package services

import (
	"context"
	"testing"

	"fitple/internal/models/db_models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllTrainers_SkipsWithdrawn(t *testing.T) {
	repo := newFakeTrainerRepo(
		db_models.Trainer{BaseModel: db_models.BaseModel{ID: uuid.New()}, Account: db_models.Account{AccountID: "a", Status: db_models.AccountStatusActive}, TrainerName: "A", PtPrice: 50000},
		db_models.Trainer{BaseModel: db_models.BaseModel{ID: uuid.New()}, Account: db_models.Account{AccountID: "b", Status: db_models.AccountStatusDeleted}, TrainerName: "B"},
	)

	trainers, err := NewTrainerService(repo).GetAllTrainers(context.Background())
	require.NoError(t, err)
	require.Len(t, trainers, 1)
	assert.Equal(t, "A", trainers[0].TrainerName)
	assert.Equal(t, 50000.0, trainers[0].PtPrice)
}
