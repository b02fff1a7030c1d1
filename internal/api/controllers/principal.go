package controllers

import (
	"net/http"

	"fitple/pkg/middleware"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentPrincipal(c *gin.Context) (*utils.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "잘못된 인증입니다.")
		return nil, false
	}
	return principal, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrInvalidInput.Message)
		return uuid.Nil, false
	}
	return id, true
}
