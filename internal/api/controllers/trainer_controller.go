package controllers

import (
	"fitple/internal/services"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TrainerController struct {
	trainerService services.TrainerServiceInterface
}

func NewTrainerController(trainerService services.TrainerServiceInterface) *TrainerController {
	return &TrainerController{
		trainerService: trainerService,
	}
}

func (t *TrainerController) GetAllTrainers(c *gin.Context) {
	trainers, err := t.trainerService.GetAllTrainers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trainers, "트레이너 목록 조회 성공")
}
