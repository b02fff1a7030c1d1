package services

import (
	"context"

	"fitple/internal/models/db_models"
	"fitple/internal/models/response_models"
	"fitple/internal/repositories"
	"fitple/pkg/utils"
)

type TrainerServiceInterface interface {
	GetAllTrainers(ctx context.Context) ([]response_models.TrainerResponse, error)
}

type TrainerService struct {
	trainerRepo repositories.TrainerRepository
}

func NewTrainerService(trainerRepo repositories.TrainerRepository) TrainerServiceInterface {
	return &TrainerService{trainerRepo: trainerRepo}
}

func (t *TrainerService) GetAllTrainers(ctx context.Context) ([]response_models.TrainerResponse, error) {
	trainers, err := t.trainerRepo.FindAllByStatus(ctx, db_models.AccountStatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.TrainerResponse, 0, len(trainers))
	for _, tr := range trainers {
		resp = append(resp, response_models.TrainerResponse{
			ID:             tr.ID.String(),
			TrainerName:    tr.TrainerName,
			TrainerPicture: tr.TrainerPicture,
			TrainerInfo:    tr.TrainerInfo,
			PtPrice:        tr.PtPrice,
			IsMembership:   tr.IsMembership,
		})
	}
	return resp, nil
}
