package utils

import (
	"errors"
	"net/http"
)

// AppError is the single structured error kind carried from services to the HTTP boundary.
type AppError struct {
	Code    string
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Code
}

func newAppError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

var (
	// accounts
	ErrNotFoundUser      = newAppError("NOT_FOUND_USER", http.StatusNotFound, "유저를 찾을 수 없습니다.")
	ErrNotFoundOwner     = newAppError("NOT_FOUND_OWNER", http.StatusNotFound, "점주를 찾을 수 없습니다.")
	ErrDuplicateUser     = newAppError("DUPLICATE_USER", http.StatusBadRequest, "중복된 사용자 정보입니다.")
	ErrDuplicateUsername = newAppError("DUPLICATE_USERNAME", http.StatusBadRequest, "이미 존재하는 사용자 아이디입니다.")
	ErrDuplicateEmail    = newAppError("DUPLICATE_EMAIL", http.StatusBadRequest, "이미 존재하는 이메일입니다.")
	ErrInvalidPassword   = newAppError("INVALID_PASSWORD", http.StatusUnauthorized, "잘못된 입력입니다.")
	ErrUnauthorized      = newAppError("UNAUTHORIZED", http.StatusUnauthorized, "유효하지 않은 토큰입니다.")
	ErrLoginFailed       = newAppError("LOGIN_FAILED", http.StatusUnauthorized, "로그인 실패")
	ErrWithdrawnAccount  = newAppError("WITHDRAWN_ACCOUNT", http.StatusUnauthorized, "회원탈퇴된 사용자입니다.")
	ErrAlreadyLoggedIn   = newAppError("ALREADY_LOGGED_IN", http.StatusConflict, "이미 로그인된 상태입니다.")
	ErrAlreadyLoggedOut  = newAppError("ALREADY_LOGGED_OUT", http.StatusUnauthorized, "이미 로그아웃된 상태입니다.")

	// stores
	ErrNotFoundStore      = newAppError("NOT_FOUND_STORE", http.StatusNotFound, "해당 매장이 존재하지 않습니다.")
	ErrInvalidUser        = newAppError("INVALID_USER", http.StatusForbidden, "본인의 매장이 아닙니다.")
	ErrForbiddenOperation = newAppError("FORBIDDEN_OPERATION", http.StatusForbidden, "매장 등록은 점주만 가능합니다.")

	// common
	ErrInvalidInput  = newAppError("INVALID_INPUT", http.StatusBadRequest, "잘못된 입력입니다.")
	ErrForbiddenUser = newAppError("FORBIDDEN_USER", http.StatusForbidden, "사용자 권한이 없습니다.")
	ErrDatabaseError = newAppError("DATABASE_ERROR", http.StatusInternalServerError, "서버 내부 오류가 발생했습니다.")

	// pt payments
	ErrReservationConflict    = newAppError("RESERVATION_CONFLICT", http.StatusConflict, "이미 예약이 존재합니다.")
	ErrTrainerNotFound        = newAppError("TRAINER_NOT_FOUND", http.StatusNotFound, "트레이너를 찾을 수 없습니다.")
	ErrUserNotFound           = newAppError("USER_NOT_FOUND", http.StatusNotFound, "사용자를 찾을 수 없습니다.")
	ErrTrainerAndUserNotFound = newAppError("TRAINER_AND_USER_NOT_FOUND", http.StatusNotFound, "트레이너와 사용자를 찾을 수 없습니다.")
	ErrPaymentFailed          = newAppError("PAYMENT_FAILED", http.StatusInternalServerError, "결제 처리 중 오류가 발생했습니다.")
	ErrPaymentNotFound        = newAppError("PAYMENT_NOT_FOUND", http.StatusNotFound, "결제 정보를 찾을 수 없습니다.")
	ErrPaymentMismatch        = newAppError("PAYMENT_MISMATCH", http.StatusBadRequest, "결제 정보가 일치하지 않습니다.")
	ErrPaymentApprovalFailed  = newAppError("PAYMENT_APPROVAL_FAILED", http.StatusInternalServerError, "결제 승인이 실패했습니다.")
	ErrInvalidPaymentStatus   = newAppError("INVALID_PAYMENT_STATUS", http.StatusBadRequest, "잘못된 결제 상태입니다.")
	ErrUnsupportedPaymentType = newAppError("INVALID_INPUT", http.StatusBadRequest, "지원하지 않는 결제 수단입니다.")
)

// AsAppError reports whether err carries an AppError and returns it.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
