package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "gradebook/internal/errors"
)

// Mark bounds accepted by every input adapter.
const (
	MinMark = 0
	MaxMark = 100
)

// Record is a single student entry: a name and an integer mark.
type Record struct {
	Name string `json:"name" csv:"Name" validate:"required"`
	Mark int    `json:"mark" csv:"Marks" validate:"min=0,max=100"`
}

var validate = validator.New()

// Validate checks that the record has a non-empty name and an in-range mark.
// Returns a validation AppError describing the first failing field.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			switch fe.Field() {
			case "Name":
				return apperrors.NewValidationError("student name must not be empty")
			case "Mark":
				return apperrors.NewValidationError(
					fmt.Sprintf("mark %d is outside the valid range %d-%d", r.Mark, MinMark, MaxMark))
			}
		}
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// ValidMark reports whether mark lies inside [MinMark, MaxMark].
func ValidMark(mark int) bool {
	return mark >= MinMark && mark <= MaxMark
}
