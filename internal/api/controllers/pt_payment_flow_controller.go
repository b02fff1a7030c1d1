package controllers

import (
	"net/http"

	"fitple/internal/models/request_models"
	"fitple/internal/models/response_models"
	"fitple/internal/services"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

// PtPaymentFlowController exposes each step of the PT payment workflow under /api/pt-payments/test.
type PtPaymentFlowController struct {
	ptPaymentService services.PtPaymentServiceInterface
}

func NewPtPaymentFlowController(ptPaymentService services.PtPaymentServiceInterface) *PtPaymentFlowController {
	return &PtPaymentFlowController{
		ptPaymentService: ptPaymentService,
	}
}

// ValidateTrainerAndUser godoc
// @Summary Check that trainer and user exist
// @Tags PtPaymentFlow
// @Param trainerId path string true "Trainer ID"
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/validate/{trainerId}/{userId} [get]
func (f *PtPaymentFlowController) ValidateTrainerAndUser(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	trainerID, ok := uuidParam(c, "trainerId")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if _, _, err := f.ptPaymentService.ValidateTrainerAndUser(c.Request.Context(), principal, trainerID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "트레이너와 유저 검증 완료")
}

// SavePtInformation godoc
// @Summary Store a PT quote draft
// @Tags PtPaymentFlow
// @Accept json
// @Produce json
// @Param request body request_models.PtInformationRequest true "PT information"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/payment-information [post]
func (f *PtPaymentFlowController) SavePtInformation(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PtInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	info, err := f.ptPaymentService.SavePtInformation(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, gin.H{
		"id":           info.ID,
		"trainerId":    info.TrainerID,
		"userId":       info.UserID,
		"ptTimes":      info.PtTimes,
		"ptPrice":      info.PtPrice,
		"isMembership": info.IsMembership,
	}, "PT 정보가 저장되었습니다.")
}

// CheckDuplicatePt godoc
// @Summary Check for an active PT booking
// @Tags PtPaymentFlow
// @Param trainerId path string true "Trainer ID"
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/check-duplicate/{trainerId}/{userId} [get]
func (f *PtPaymentFlowController) CheckDuplicatePt(c *gin.Context) {
	trainerID, ok := uuidParam(c, "trainerId")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := f.ptPaymentService.CheckDuplicatePt(c.Request.Context(), trainerID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "중복 예약이 없습니다.")
}

// ShowPaymentPage godoc
// @Summary Render the payment page of a stored quote
// @Tags PtPaymentFlow
// @Param ptInformationId path string true "PT information ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/paymentpage/{ptInformationId} [get]
func (f *PtPaymentFlowController) ShowPaymentPage(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	infoID, ok := uuidParam(c, "ptInformationId")
	if !ok {
		return
	}

	page, err := f.ptPaymentService.ShowPaymentPage(c.Request.Context(), principal, infoID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "결제 화면 조회 성공")
}

func (f *PtPaymentFlowController) SelectPtTimes(c *gin.Context) {
	selectPtTimes(c, f.ptPaymentService)
}

func (f *PtPaymentFlowController) SavePayment(c *gin.Context) {
	savePayment(c, f.ptPaymentService)
}

// CompletePayment godoc
// @Summary Charge and complete a PT payment
// @Tags PtPaymentFlow
// @Accept json
// @Produce json
// @Param request body request_models.PtPaymentRequest true "Payment"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/complete [post]
func (f *PtPaymentFlowController) CompletePayment(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	payment, err := f.ptPaymentService.CompletePayment(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPtPaymentResponse(payment), "결제가 완료되었습니다.")
}

// RecordEntitlement godoc
// @Summary Record the PT entitlement of a settled payment
// @Tags PtPaymentFlow
// @Accept json
// @Produce json
// @Param request body request_models.PaymentIDRequest true "Payment ID"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/save-UserPt [post]
func (f *PtPaymentFlowController) RecordEntitlement(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PaymentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	userPt, err := f.ptPaymentService.RecordEntitlement(c.Request.Context(), principal, req.PaymentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, gin.H{
		"id":          userPt.ID,
		"ptPaymentId": userPt.PtPaymentID,
		"ptTimes":     userPt.PtTimes,
		"isActive":    userPt.IsActive,
	}, "결제 정보가 UserPt에 저장되었습니다.")
}

// PaymentCompletePage godoc
// @Summary Render the confirmation of a payment
// @Tags PtPaymentFlow
// @Accept json
// @Produce json
// @Param request body request_models.PaymentIDRequest true "Payment ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/completePage [post]
func (f *PtPaymentFlowController) PaymentCompletePage(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PaymentIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	page, err := f.ptPaymentService.PaymentCompletePage(c.Request.Context(), principal, req.PaymentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "결제 완료 화면 조회 성공")
}

// CompleteAll godoc
// @Summary Complete, record and confirm a PT payment in one call
// @Tags PtPaymentFlow
// @Accept json
// @Produce json
// @Param request body request_models.PtPaymentRequest true "Payment"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/test/all-complete [post]
func (f *PtPaymentFlowController) CompleteAll(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	page, err := f.ptPaymentService.CompleteAll(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "결제 및 PT 등록이 완료되었습니다.")
}
