package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/Mahynlo/Api-AguaVp-sub000/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest runs struct tag validation over a request DTO and shapes
// failures into the standard validation error.
func ValidateRequest(req interface{}) error {
	if err := instance().Struct(req); err != nil {
		fields := map[string]interface{}{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return ierr.WithError(err).
			WithHint("Invalid request payload").
			WithReportableDetails(fields).
			Mark(ierr.ErrValidation)
	}
	return nil
}
