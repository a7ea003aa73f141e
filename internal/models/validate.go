package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/myday/internal/datekey"
	apperrors "github.com/julianstephens/myday/internal/errors"
)

var validate *validator.Validate

var tagMessages = map[string]string{
	"required": "is required",
	"nonblank": "must not be empty",
	"datekey":  "must be a date in YYYY-MM-DD format",
	"mood":     "must be one of happy, excited, neutral, sad, anxious, angry",
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("nonblank", validateNonBlank)
	_ = validate.RegisterValidation("datekey", validateDateKey)
	_ = validate.RegisterValidation("mood", validateMood)
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateDateKey(fl validator.FieldLevel) bool {
	return datekey.Valid(fl.Field().String())
}

func validateMood(fl validator.FieldLevel) bool {
	return Mood(fl.Field().String()).Valid()
}

// Validate checks a to-do item.
func (t TodoItem) Validate() error {
	return toValidationError(validate.Struct(t))
}

// Validate checks an entry and each of its to-dos.
func (e JournalEntry) Validate() error {
	return toValidationError(validate.Struct(e))
}

// ValidateTodoText rejects labels that are empty after trimming.
func ValidateTodoText(text string) error {
	if err := validate.Var(text, "nonblank"); err != nil {
		return apperrors.NewValidationError("text", tagMessages["nonblank"])
	}
	return nil
}

// ValidateEntryText rejects entry text that cannot be sent for analysis.
func ValidateEntryText(text string) error {
	if err := validate.Var(text, "nonblank"); err != nil {
		return apperrors.NewValidationError("text", "must not be empty; write something first")
	}
	return nil
}

// toValidationError reduces validator output to the first failing field.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	msg, ok := tagMessages[first.Tag()]
	if !ok {
		msg = "is invalid"
	}
	return apperrors.NewValidationError(first.Field(), msg)
}
