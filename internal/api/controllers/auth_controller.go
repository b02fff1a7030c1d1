package controllers

import (
	"fitple/internal/models/request_models"
	"fitple/internal/services"
	"fitple/pkg/middleware"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Login
// @Description Authenticate a user, owner or trainer and return access and refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	tokens, err := a.authService.Login(c.Request.Context(), req, middleware.BearerToken(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tokens, "로그인 성공")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the stored refresh token of the caller
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	if err := a.authService.Logout(c.Request.Context(), principal); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, "로그아웃이 완료되었습니다.", "로그아웃 성공")
}

// Refresh godoc
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/token/refresh [post]
func (a *AuthController) Refresh(c *gin.Context) {
	var req request_models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, err)
		return
	}

	tokens, err := a.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tokens, "토큰 재발급 성공")
}
