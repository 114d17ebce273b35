package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/courtcraft/estimates/internal/model"
)

// The model types carry gin "binding" tags; the same rules are enforced here
// for callers that do not go through the HTTP layer.
var inputValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}()

func validateProject(input model.ProjectInput) error {
	if err := inputValidator.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
