package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	TraceID    string      `json:"traceId,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		StatusCode: code,
		Message:    message,
		Data:       data,
		TraceID:    c.GetString("trace_id"),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		StatusCode: code,
		Message:    message,
		TraceID:    c.GetString("trace_id"),
	})
}

// HandleServiceError maps a service error onto the response envelope.
func HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		if appErr.Status >= http.StatusInternalServerError {
			log.Ctx(c.Request.Context()).Error().Err(err).Str("code", appErr.Code).Msg("request failed")
		} else {
			log.Ctx(c.Request.Context()).Warn().Str("code", appErr.Code).Msg("request rejected")
		}
		RespondError(c, appErr.Status, appErr.Message)
		return
	}

	log.Ctx(c.Request.Context()).Error().Err(err).Msg("unexpected error")
	RespondError(c, http.StatusInternalServerError, "서버 내부 오류가 발생했습니다.")
}

// HandleBindError answers a failed ShouldBind* call, joining validation failures per field.
func HandleBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		RespondError(c, http.StatusBadRequest, JoinValidationErrors(verrs))
		return
	}
	RespondError(c, http.StatusBadRequest, "잘못된 요청 형식입니다.")
}
