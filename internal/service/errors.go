package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError - тело запроса на создание не соответствует форме сущности
type ValidationError struct {
	Fields []string
	err    error
}

func newValidationError(err error) *ValidationError {
	ve := &ValidationError{err: err}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Fields = append(ve.Fields, fe.Field())
		}
	}
	return ve
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("validation failed: %v", e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// IsValidationError сообщает, является ли ошибка (или любая в цепочке) ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
