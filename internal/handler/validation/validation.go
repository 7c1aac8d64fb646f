package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"room-reservation/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once        sync.Once
	registerErr error

	phonePattern = regexp.MustCompile(`^[0-9+\-() ]{5,20}$`)

	// Case-insensitive fragments rejected in free text.
	dangerousPatterns = []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"<iframe",
		"eval(",
		"<img",
		"src=",
		"<style",
		"expression(",
		"vbscript:",
	}
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Register installs the custom tags on gin's binding validator. Safe to call
// multiple times.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("safetext", validateSafeText); err != nil {
		return fmt.Errorf("failed to register 'safetext' validator: %w", err)
	}
	if err := v.RegisterValidation("hhmm", validateTimeOfDay); err != nil {
		return fmt.Errorf("failed to register 'hhmm' validator: %w", err)
	}
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return fmt.Errorf("failed to register 'phone' validator: %w", err)
	}
	if err := v.RegisterValidation("isodate", validateDate); err != nil {
		return fmt.Errorf("failed to register 'isodate' validator: %w", err)
	}
	return nil
}

// IsSafeText reports whether s is free of script-like content.
func IsSafeText(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range dangerousPatterns {
		if strings.Contains(lower, p) {
			return false
		}
	}
	return true
}

func validateSafeText(fl validator.FieldLevel) bool {
	return IsSafeText(fl.Field().String())
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := reservation.ParseTimeOfDay(s)
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := reservation.ParseDate(s)
	return err == nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// FieldErrors turns binding errors into per-field messages. It returns nil for
// errors that are not validation failures, such as malformed JSON.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "safetext":
		return "contains disallowed content"
	case "hhmm":
		return "must be a time in HH:MM format"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "phone":
		return "must be 5-20 digits, spaces or + - ( )"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min", "gte", "gt":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
