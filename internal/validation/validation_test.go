package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAccepts(t *testing.T) {
	t.Parallel()

	check := NewDefault()

	assert.NoError(t, check("port", "8080", "number,max=5"))
	assert.NoError(t, check("path", "/tmp", "required"))
}

func TestCheckRejectsWithCLIMessage(t *testing.T) {
	t.Parallel()

	check := NewDefault()

	err := check("ratio", "fast", "number")
	require.Error(t, err)
	assert.Equal(t, "`fast` is not a valid number", err.Error())
}

func TestCheckWithCustomValidator(t *testing.T) {
	t.Parallel()

	valid := validator.New()
	err := valid.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()

		return len(value) > 0 && (value[len(value)-1]-'0')%2 == 0
	})
	require.NoError(t, err)

	check := NewWith(valid)

	assert.NoError(t, check("count", "42", "even"))
	assert.Error(t, check("count", "7", "even"))
}
