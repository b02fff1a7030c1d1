package controllers

import (
	"net/http"

	"fitple/internal/models/request_models"
	"fitple/internal/services"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Signup godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UserSignupRequest true "User signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/user/signup [post]
func (u *UserController) Signup(c *gin.Context) {
	var req request_models.UserSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	user, err := u.userService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, gin.H{"id": user.ID, "accountId": user.AccountID}, "회원가입 성공")
}

// Withdraw godoc
// @Summary Withdraw the calling user
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/users/signout [delete]
func (u *UserController) Withdraw(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	if err := u.userService.Withdraw(c.Request.Context(), principal); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "회원탈퇴 성공")
}

// ReadProfile godoc
// @Summary Read the calling user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/user [get]
func (u *UserController) ReadProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	profile, err := u.userService.ReadProfile(c.Request.Context(), principal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "프로필 조회 성공")
}

// UpdateProfile godoc
// @Summary Update the calling user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateUserProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/user [put]
func (u *UserController) UpdateProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	profile, err := u.userService.UpdateProfile(c.Request.Context(), principal, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "프로필 수정 성공")
}

// UpdatePassword godoc
// @Summary Change the calling user's password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePasswordRequest true "Password payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/profile/users/password [put]
func (u *UserController) UpdatePassword(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	if err := u.userService.UpdatePassword(c.Request.Context(), principal, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "비밀번호 변경 성공")
}
