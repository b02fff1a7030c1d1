package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleServiceError_MapsAppErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{ErrReservationConflict, http.StatusConflict, ErrReservationConflict.Message},
		{fmt.Errorf("load trainer: %w", ErrTrainerNotFound), http.StatusNotFound, ErrTrainerNotFound.Message},
		{ErrForbiddenUser, http.StatusForbidden, ErrForbiddenUser.Message},
		{ErrPaymentFailed, http.StatusInternalServerError, ErrPaymentFailed.Message},
		{errors.New("boom"), http.StatusInternalServerError, "서버 내부 오류가 발생했습니다."},
	}

	for _, tc := range cases {
		w := serve(func(c *gin.Context) { HandleServiceError(c, tc.err) }, "")
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		resp := decode(t, w)
		assert.Equal(t, tc.status, resp.StatusCode)
		assert.Equal(t, tc.msg, resp.Message)
	}
}

type bindTarget struct {
	TrainerID string `json:"trainerId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

func TestHandleBindError_JoinsFieldMessages(t *testing.T) {
	w := serve(func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		RespondSuccess(c, req, "ok")
	}, `{"email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Contains(t, resp.Message, "trainerID : 필수 항목입니다.")
	assert.Contains(t, resp.Message, "email : 유효한 이메일 주소를 입력하세요.")

	w = serve(func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
	}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "잘못된 요청 형식입니다.", decode(t, w).Message)
}

func TestRespondWithStatus_CarriesTraceID(t *testing.T) {
	w := serve(func(c *gin.Context) {
		c.Set("trace_id", "abc")
		RespondWithStatus(c, http.StatusCreated, gin.H{"id": 1}, "created")
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "abc", resp.TraceID)
	assert.Equal(t, "created", resp.Message)
}
