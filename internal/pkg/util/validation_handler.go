package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 对绑定后的 DTO 做业务规则校验。
// 返回原始的 validator 错误，由 response.Error 统一落到 400。
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
