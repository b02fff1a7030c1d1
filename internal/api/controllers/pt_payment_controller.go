package controllers

import (
	"net/http"

	"fitple/internal/models/request_models"
	"fitple/internal/models/response_models"
	"fitple/internal/services"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PtPaymentController struct {
	ptPaymentService services.PtPaymentServiceInterface
}

func NewPtPaymentController(ptPaymentService services.PtPaymentServiceInterface) *PtPaymentController {
	return &PtPaymentController{
		ptPaymentService: ptPaymentService,
	}
}

// ProcessPayment godoc
// @Summary Start a PT payment
// @Description Validate trainer and user, reject an active booking, store the PT quote and return the payment page
// @Tags PtPayments
// @Accept json
// @Produce json
// @Param request body request_models.PtInformationRequest true "PT information"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/process [post]
func (p *PtPaymentController) ProcessPayment(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PtInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	page, err := p.ptPaymentService.ProcessPayment(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "결제 화면 조회 성공")
}

// SelectPtTimes godoc
// @Summary Quote a PT tier
// @Description Resolve a tier label case-insensitively and compute its total for the trainer price
// @Tags PtPayments
// @Accept json
// @Produce json
// @Param request body request_models.PtTotalAmountRequest true "Tier and unit price"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/pt-payments/select-PtTimes [post]
func (p *PtPaymentController) SelectPtTimes(c *gin.Context) {
	selectPtTimes(c, p.ptPaymentService)
}

// SavePayment godoc
// @Summary Save a pending PT payment
// @Tags PtPayments
// @Accept json
// @Produce json
// @Param request body request_models.PtPaymentRequest true "Payment"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/save-payment [post]
func (p *PtPaymentController) SavePayment(c *gin.Context) {
	savePayment(c, p.ptPaymentService)
}

// ApprovePayment godoc
// @Summary Approve a pending PT payment
// @Tags PtPayments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body request_models.ApprovePaymentRequest true "Payment type"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/pt-payments/{id} [put]
func (p *PtPaymentController) ApprovePayment(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	paymentID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req request_models.ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	payment, err := p.ptPaymentService.ApprovePayment(c.Request.Context(), principal, paymentID, req.PaymentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPtPaymentResponse(payment), "결제가 승인되었습니다.")
}

func selectPtTimes(c *gin.Context, svc services.PtPaymentServiceInterface) {
	var req request_models.PtTotalAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	tier, total, err := svc.SelectPtTimes(req.SelectedTimes, req.TrainerPrice)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PtTotalAmountResponse{
		PtTimes: string(tier),
		Times:   tier.Times(),
		Amount:  total,
	}, "PT 횟수와 총액 계산 완료")
}

func savePayment(c *gin.Context, svc services.PtPaymentServiceInterface) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.PtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	payment, err := svc.SavePayment(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, response_models.NewPtPaymentResponse(payment), "결제 정보가 저장되었습니다.")
}
