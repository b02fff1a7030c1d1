package controllers

import (
	"net/http"

	"fitple/internal/models/request_models"
	"fitple/internal/services"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

type OwnerController struct {
	ownerService services.OwnerServiceInterface
}

func NewOwnerController(ownerService services.OwnerServiceInterface) *OwnerController {
	return &OwnerController{
		ownerService: ownerService,
	}
}

// Signup godoc
// @Summary Register an owner
// @Tags Owners
// @Accept json
// @Produce json
// @Param request body request_models.OwnerSignupRequest true "Owner signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/owners/signup [post]
func (o *OwnerController) Signup(c *gin.Context) {
	var req request_models.OwnerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	owner, err := o.ownerService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, gin.H{"id": owner.ID, "accountId": owner.AccountID}, "회원가입 성공")
}

// Withdraw godoc
// @Summary Withdraw the calling owner
// @Tags Owners
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/owners/signout [delete]
func (o *OwnerController) Withdraw(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	if err := o.ownerService.Withdraw(c.Request.Context(), principal); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "회원탈퇴 성공")
}

// ReadProfile godoc
// @Summary Read the calling owner's profile
// @Tags Owners
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/owner [get]
func (o *OwnerController) ReadProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	profile, err := o.ownerService.ReadProfile(c.Request.Context(), principal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "프로필 조회 성공")
}

// UpdateProfile godoc
// @Summary Update the calling owner's profile
// @Tags Owners
// @Accept json
// @Produce json
// @Param request body request_models.UpdateOwnerProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/owner [put]
func (o *OwnerController) UpdateProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.UpdateOwnerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	profile, err := o.ownerService.UpdateProfile(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "프로필 수정 성공")
}

// UpdatePassword godoc
// @Summary Change the calling owner's password
// @Tags Owners
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePasswordRequest true "Password payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/owner/password [put]
func (o *OwnerController) UpdatePassword(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	if err := o.ownerService.UpdatePassword(c.Request.Context(), principal, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "비밀번호 변경 성공")
}
