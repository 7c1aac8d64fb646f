//go:build unit

package validation_test

import (
	"testing"

	"room-reservation/internal/handler/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Note  string `validate:"omitempty,max=200,safetext"`
	Start string `validate:"required,hhmm"`
	Date  string `validate:"required,isodate"`
	Phone string `validate:"required,phone"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, validation.RegisterOn(v))
	return v
}

func TestIsSafeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain text", "Need a projector and whiteboard", true},
		{"empty", "", true},
		{"script tag", "<script>alert(1)</script>", false},
		{"upper case script", "<SCRIPT>", false},
		{"javascript url", "JavaScript:void(0)", false},
		{"event handler", "x onerror=alert(1)", false},
		{"iframe", "<iframe src=x>", false},
		{"eval", "eval(code)", false},
		{"css expression", "width: expression(alert(1))", false},
		{"vbscript", "vbscript:msgbox", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsSafeText(tt.in))
		})
	}
}

func TestCustomTags(t *testing.T) {
	v := newValidator(t)

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.Struct(sample{Note: "quiet room", Start: "09:00", Date: "2030-01-02", Phone: "+81 (3) 1234-5678"})
		assert.NoError(t, err)
	})

	t.Run("each custom tag rejects bad input", func(t *testing.T) {
		err := v.Struct(sample{Note: "<img src=x>", Start: "25:00", Date: "2030-13-01", Phone: "abc"})
		require.Error(t, err)

		fields := validation.FieldErrors(err)
		got := map[string]string{}
		for _, f := range fields {
			got[f.Field] = f.Message
		}
		assert.Equal(t, "contains disallowed content", got["Note"])
		assert.Equal(t, "must be a time in HH:MM format", got["Start"])
		assert.Equal(t, "must be a date in YYYY-MM-DD format", got["Date"])
		assert.Equal(t, "must be 5-20 digits, spaces or + - ( )", got["Phone"])
	})
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(assert.AnError))
}
