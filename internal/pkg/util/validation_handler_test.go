package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Email    string `validate:"email"`
	Password string `validate:"min=6,max=72"`
}

func TestValidateDTO(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Email: "a@x.com", Password: "secret123"})
	assert.NoError(t, err)

	err = ValidateDTO(&sampleDTO{Email: "not-an-email", Password: "secret123"})
	require.Error(t, err)
	// 返回原始的 validator 错误，便于边界层统一翻译
	var ve validator.ValidationErrors
	assert.ErrorAs(t, err, &ve)

	err = ValidateDTO(&sampleDTO{Email: "a@x.com", Password: "short"})
	assert.Error(t, err)
}
