package request

import (
	"errors"
	"fmt"

	cErr "orgchart/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator 請求 DTO 可提供「欄位.規則」對應的錯誤訊息
type Validator interface {
	GetMessages() ValidatorMessages
}

// ValidatorMessages key 為 struct 欄位名稱加規則，例如 "EmployeeID.required"；
// dive 進 slice 元素時同樣只用元素的欄位名稱（"ID.gt"）
type ValidatorMessages map[string]string

// GetError 將 validator 錯誤轉成 VALIDATION_ERROR，只回傳第一個違反的規則
func GetError(request any, err error) *cErr.Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return cErr.ValidateErr("request body is invalid")
	}
	return cErr.ValidateErr(Message(request, errs[0]))
}

// Message 優先使用 DTO 自訂訊息，否則以欄位與規則組成
func Message(request any, fe validator.FieldError) string {
	if v, ok := request.(Validator); ok {
		if message, exist := v.GetMessages()[fe.StructField()+"."+fe.Tag()]; exist {
			return message
		}
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed the '%s=%s' rule", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed the '%s' rule", fe.Field(), fe.Tag())
}
