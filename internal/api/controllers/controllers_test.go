package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitple/internal/models/db_models"
	"fitple/internal/models/request_models"
	"fitple/internal/models/response_models"
	"fitple/internal/services"
	"fitple/pkg/middleware"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testUser   = &utils.Principal{ID: uuid.New(), AccountID: "user1", Role: utils.RoleUser}
	testTokens = utils.NewTokenProvider("controller-secret", time.Minute, time.Hour)
)

type singleResolver struct{}

func (singleResolver) ResolvePrincipal(_ context.Context, accountID, role string) (*utils.Principal, error) {
	if accountID == testUser.AccountID && role == testUser.Role {
		return testUser, nil
	}
	return nil, utils.ErrUnauthorized
}

// stubPtPayments answers only the calls a test wires; the rest panic through the nil interface.
type stubPtPayments struct {
	services.PtPaymentServiceInterface
	approve  func(paymentID uuid.UUID, paymentType db_models.PaymentType) (*db_models.PtPayment, error)
	complete func(req request_models.PtPaymentRequest) (*db_models.PtPayment, error)
	process  func(req request_models.PtInformationRequest) (string, error)
}

func (s *stubPtPayments) SelectPtTimes(selectedTimes string, trainerPrice float64) (db_models.PtTimes, float64, error) {
	tier, err := services.SelectPtTimes(selectedTimes)
	if err != nil {
		return "", 0, err
	}
	return tier, services.ComputeTotal(trainerPrice, tier), nil
}

func (s *stubPtPayments) ApprovePayment(_ context.Context, principal *utils.Principal, paymentID uuid.UUID, paymentType db_models.PaymentType) (*db_models.PtPayment, error) {
	return s.approve(paymentID, paymentType)
}

func (s *stubPtPayments) CompletePayment(_ context.Context, _ *utils.Principal, req request_models.PtPaymentRequest) (*db_models.PtPayment, error) {
	return s.complete(req)
}

func (s *stubPtPayments) ProcessPayment(_ context.Context, _ *utils.Principal, req request_models.PtInformationRequest) (string, error) {
	return s.process(req)
}

func newPaymentRouter(svc services.PtPaymentServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	auth := middleware.JWTAuthMiddleware(testTokens, singleResolver{})
	pc := NewPtPaymentController(svc)
	fc := NewPtPaymentFlowController(svc)

	payments := r.Group("/api/pt-payments")
	payments.POST("/select-PtTimes", pc.SelectPtTimes)
	payments.POST("/process", auth, pc.ProcessPayment)
	payments.PUT("/:id", auth, pc.ApprovePayment)
	payments.POST("/test/complete", auth, fc.CompletePayment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, authed bool) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := testTokens.IssueAccess(testUser.AccountID, testUser.Role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSelectPtTimes_ReturnsQuote(t *testing.T) {
	r := newPaymentRouter(&stubPtPayments{})

	w, resp := doJSON(t, r, http.MethodPost, "/api/pt-payments/select-PtTimes",
		request_models.PtTotalAmountRequest{SelectedTimes: "ten_times", TrainerPrice: 60000}, false)
	require.Equal(t, http.StatusOK, w.Code)

	data, _ := json.Marshal(resp.Data)
	var quote response_models.PtTotalAmountResponse
	require.NoError(t, json.Unmarshal(data, &quote))
	assert.Equal(t, "TEN_TIMES", quote.PtTimes)
	assert.Equal(t, 10, quote.Times)
	assert.Equal(t, 600000.0, quote.Amount)

	w, resp = doJSON(t, r, http.MethodPost, "/api/pt-payments/select-PtTimes",
		request_models.PtTotalAmountRequest{SelectedTimes: "nope", TrainerPrice: 60000}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.ErrInvalidInput.Message, resp.Message)

	w, resp = doJSON(t, r, http.MethodPost, "/api/pt-payments/select-PtTimes", map[string]any{}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "selectedTimes : 필수 항목입니다.")
}

func TestProcessPayment_RequiresAuthAndMapsConflict(t *testing.T) {
	r := newPaymentRouter(&stubPtPayments{
		process: func(request_models.PtInformationRequest) (string, error) {
			return "", utils.ErrReservationConflict
		},
	})
	body := request_models.PtInformationRequest{TrainerID: uuid.New(), UserID: testUser.ID}

	w, _ := doJSON(t, r, http.MethodPost, "/api/pt-payments/process", body, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/pt-payments/process", body, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, utils.ErrReservationConflict.Message, resp.Message)
	assert.NotEmpty(t, resp.TraceID)
}

func TestApprovePayment_Controller(t *testing.T) {
	paymentID := uuid.New()
	r := newPaymentRouter(&stubPtPayments{
		approve: func(id uuid.UUID, paymentType db_models.PaymentType) (*db_models.PtPayment, error) {
			if id != paymentID {
				return nil, utils.ErrPaymentNotFound
			}
			return &db_models.PtPayment{
				BaseModel:     db_models.BaseModel{ID: id},
				PaymentType:   paymentType,
				PaymentStatus: db_models.PaymentStatusApproved,
			}, nil
		},
	})
	body := request_models.ApprovePaymentRequest{PaymentType: db_models.PaymentTypeCash}

	w, resp := doJSON(t, r, http.MethodPut, "/api/pt-payments/"+paymentID.String(), body, true)
	require.Equal(t, http.StatusOK, w.Code)
	data, _ := json.Marshal(resp.Data)
	var payment response_models.PtPaymentResponse
	require.NoError(t, json.Unmarshal(data, &payment))
	assert.Equal(t, paymentID.String(), payment.ID)
	assert.Equal(t, db_models.PaymentStatusApproved, payment.PaymentStatus)

	w, _ = doJSON(t, r, http.MethodPut, "/api/pt-payments/"+uuid.NewString(), body, true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/pt-payments/not-a-uuid", body, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompletePayment_Controller(t *testing.T) {
	r := newPaymentRouter(&stubPtPayments{
		complete: func(req request_models.PtPaymentRequest) (*db_models.PtPayment, error) {
			if req.PtTimes == db_models.PtTimesSixty {
				return nil, utils.ErrPaymentFailed
			}
			return &db_models.PtPayment{
				BaseModel:     db_models.BaseModel{ID: uuid.New()},
				PtTimes:       req.PtTimes,
				Amount:        1500000,
				PaymentStatus: db_models.PaymentStatusCompleted,
			}, nil
		},
	})
	req := request_models.PtPaymentRequest{
		TrainerID:   uuid.New(),
		UserID:      testUser.ID,
		PtTimes:     db_models.PtTimesThirty,
		PaymentType: db_models.PaymentTypeCreditCard,
	}

	w, resp := doJSON(t, r, http.MethodPost, "/api/pt-payments/test/complete", req, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "결제가 완료되었습니다.", resp.Message)

	req.PtTimes = db_models.PtTimesSixty
	w, resp = doJSON(t, r, http.MethodPost, "/api/pt-payments/test/complete", req, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, utils.ErrPaymentFailed.Message, resp.Message)
}

type stubStores struct {
	services.StoreServiceInterface
}

func (stubStores) FindByID(_ context.Context, storeID uuid.UUID) (*response_models.StoreResponse, error) {
	return nil, utils.ErrNotFoundStore
}

func TestStoreController_FindByIDNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/stores/:storeId", NewStoreController(stubStores{}).FindByID)

	w, resp := doJSON(t, r, http.MethodGet, "/api/stores/"+uuid.NewString(), nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.ErrNotFoundStore.Message, resp.Message)
}
