package errs

import "errors"

// Error categories. Usecase errors are marked with exactly one of these so the
// transport layer can map them without knowing individual causes.
var (
	ErrValidation             = errors.New("validation error")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrAuth                   = errors.New("not authorized")
	ErrPaymentSetupIncomplete = errors.New("payment setup incomplete")
	ErrGateway                = errors.New("payment gateway error")
	ErrInternal               = errors.New("internal error")
)

// Category returns the category sentinel err was marked with, or ErrInternal.
func Category(err error) error {
	for _, c := range []error{
		ErrValidation,
		ErrNotFound,
		ErrConflict,
		ErrAuth,
		ErrPaymentSetupIncomplete,
		ErrGateway,
	} {
		if Is(err, c) {
			return c
		}
	}
	return ErrInternal
}
