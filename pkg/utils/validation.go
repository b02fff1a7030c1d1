package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JoinValidationErrors renders one "field : message" line per failed field.
func JoinValidationErrors(verrs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range verrs {
		b.WriteString(lowerFirst(fe.Field()))
		b.WriteString(" : ")
		b.WriteString(fieldMessage(fe))
		b.WriteString("\n")
	}
	return b.String()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다."
	case "email":
		return "유효한 이메일 주소를 입력하세요."
	case "min":
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자까지 가능합니다.", fe.Param())
	case "gt":
		return fmt.Sprintf("%s보다 커야 합니다.", fe.Param())
	case "oneof":
		return fmt.Sprintf("다음 중 하나여야 합니다: %s", fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s와 일치해야 합니다.", lowerFirst(fe.Param()))
	default:
		return "잘못된 입력입니다."
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
