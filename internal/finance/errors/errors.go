package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Handlers map these to HTTP status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrLimitExceeded = errors.New("limit exceeded")
)

// CategoryLimitPerType is the maximum number of categories a user may hold per type.
const CategoryLimitPerType = 30

var (
	ErrCategoryNotFound    = fmt.Errorf("%w: Category not found", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: Transaction not found", ErrNotFound)
	ErrCardNotFound        = fmt.Errorf("%w: Card not found", ErrNotFound)

	ErrDefaultCategoryImmutable   = fmt.Errorf("%w: 기본 카테고리는 수정할 수 없습니다", ErrForbidden)
	ErrDefaultCategoryUndeletable = fmt.Errorf("%w: 기본 카테고리는 삭제할 수 없습니다", ErrForbidden)
	ErrCategoryLimitExceeded      = fmt.Errorf("%w: category limit of %d per type reached", ErrLimitExceeded, CategoryLimitPerType)
)

// Message returns the user facing part of a classified error, without the class prefix.
func Message(err error) string {
	msg := err.Error()
	for _, class := range []error{ErrNotFound, ErrForbidden, ErrLimitExceeded} {
		if errors.Is(err, class) {
			return strings.TrimPrefix(msg, class.Error()+": ")
		}
	}
	return msg
}

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidCategory = NewValidationError("Invalid category")
var ErrInvalidCard = NewValidationError("Invalid card")

type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

// Messages lists the message of every collected error.
func (ve *ValidationErrors) Messages() []string {
	messages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		messages[i] = err.Error()
	}
	return messages
}

// ErrOrNil returns nil when nothing was collected, the single error when
// exactly one was, and ve otherwise.
func (ve *ValidationErrors) ErrOrNil() error {
	switch len(ve.Errors) {
	case 0:
		return nil
	case 1:
		return ve.Errors[0]
	default:
		return ve
	}
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	ok := errors.As(err, &validationErrors)
	return ok
}
