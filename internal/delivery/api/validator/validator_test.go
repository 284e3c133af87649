package validator

import (
	"testing"

	domainerrors "cafe/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin volunteer"`
	Quantity int    `query:"qty" validate:"min=1"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&loginRequest{Email: "a@b.test", Password: "x", Quantity: 1}))

	err := v.Validate(&loginRequest{Email: "nope", Role: "owner"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var fieldErr *domainerrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "is required",
		"role":     "must be one of: admin volunteer",
		"qty":      "must be at least 1",
	}, fieldErr.Fields())
}
