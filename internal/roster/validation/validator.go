// Package validation enforces the optional closed category sets on records.
// It is only wired in when strict categories are enabled; by default records
// are accepted as-is.
package validation

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/roster/models"
	"github.com/go-playground/validator/v10"
)

// RecordValidator checks a record's required names, non-negative salary and
// membership of gender, department and position in a Catalog.
type RecordValidator struct {
	v *validator.Validate
}

func New(c models.Catalog) *RecordValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return c.HasGender(fl.Field().String())
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return c.HasDepartment(fl.Field().String())
	})
	_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		return c.HasPosition(fl.Field().String())
	})

	return &RecordValidator{v: v}
}

// Validate returns nil for an acceptable record. Category failures wrap
// common.ErrorCategoryNotAllowed; other failures wrap common.ErrorInvalidRecord.
func (rv *RecordValidator) Validate(r models.Record) error {
	err := rv.v.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorInvalidRecord, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "gender", "department", "position":
		return fmt.Errorf("%w: %s %q for %s", common.ErrorCategoryNotAllowed, fe.Tag(), fe.Value(), r.FullName())
	default:
		return fmt.Errorf("%w: %s failed %q", common.ErrorInvalidRecord, fe.Field(), fe.Tag())
	}
}
