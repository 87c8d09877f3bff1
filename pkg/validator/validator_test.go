package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Math"),
			validator.Positive("id", 7),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", " "),
			validator.Email("email", ""),
			validator.Required("password", ""),
		)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 3)
		assert.Equal(t, []string{"email", "password"}, ve.Fields())
		assert.True(t, ve.Has("password"))
		assert.False(t, ve.Has("name"))
		assert.Equal(t, "email is required", ve.Message())
		assert.Equal(t, "validation.required", ve[0].Code)
		assert.Contains(t, err.Error(), "validation failed: email: is required")
	})
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Required("name", ""))
	wrapped := fmt.Errorf("create tag: %w", err)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.NotNil(t, validator.ExtractValidationErrors(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestEmail(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"admin@learnzone.io", "a.b+c@mail.example.com"} {
		assert.NoError(t, validator.Apply(validator.Email("email", ok)), ok)
	}
	for _, bad := range []string{"", "admin", "admin@", "@x.io", "admin@localhost", "admin@x..io", "Admin <admin@x.io>"} {
		assert.Error(t, validator.Apply(validator.Email("email", bad)), bad)
	}
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxLen("name", "ёжик", 4)))
	assert.Error(t, validator.Apply(validator.MaxLen("name", strings.Repeat("a", 5), 4)))
}

func TestPositive(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Positive("id", int64(1))))
	assert.Error(t, validator.Apply(validator.Positive("id", 0)))
	assert.Error(t, validator.Apply(validator.Positive("id", -3)))
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Digits("id", "0042")))
	for _, bad := range []string{"", "4a", "-1", "1.5", " 1"} {
		assert.Error(t, validator.Apply(validator.Digits("id", bad)), bad)
	}
}
