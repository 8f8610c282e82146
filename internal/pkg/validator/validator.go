// Package validator 요청 구조체의 입력값 검증을 제공합니다.
//
// go-playground/validator를 감싸서 전역 Validate 인스턴스를 공유하고,
// 검증 실패 시 사용자 친화적인 한국어 메시지로 변환하는 기능을 제공합니다.
// 필드명은 구조체의 `korean` 태그를 우선 사용합니다.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 전역 Validator 인스턴스 (동시성 안전, 캐싱을 위해 재사용)
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 `korean` 태그의 필드명을 사용합니다. (없으면 구조체 필드명)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("korean"); name != "" {
			return name
		}
		return fld.Name
	})

	return v
}

// Struct 구조체의 validate 태그 기반 유효성 검사를 수행합니다.
func Struct(s any) error {
	return validate.Struct(s)
}

// Var 단일 변수에 대한 유효성 검사를 수행합니다.
func Var(field any, tag string) error {
	return validate.Var(field, tag)
}

// FormatValidationError 검증 에러를 사용자에게 반환할 수 있는 메시지로 변환합니다.
// validator.ValidationErrors가 아닌 경우 일반 메시지를 반환합니다.
func FormatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "요청 데이터가 유효하지 않습니다"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}

	return strings.Join(messages, ", ")
}

func formatFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s은(는) 필수입니다", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s은(는) 최소 %s자 이상이어야 합니다", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s은(는) 최대 %s자까지 허용됩니다", fieldErr.Field(), fieldErr.Param())
	case "url":
		return fmt.Sprintf("%s이(가) 올바른 URL 형식이 아닙니다", fieldErr.Field())
	default:
		return fmt.Sprintf("%s이(가) 유효하지 않습니다(%s)", fieldErr.Field(), fieldErr.Tag())
	}
}
