package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "test@example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "required", rule.Error.Code)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "")
		assert.False(t, rule.Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		rule := validator.RequiredString("email", " \t\n ")
		assert.False(t, rule.Check())
	})

	t.Run("passes for string with surrounding whitespace", func(t *testing.T) {
		rule := validator.RequiredString("name", "  John  ")
		assert.True(t, rule.Check())
	})
}
