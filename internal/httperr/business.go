package httperr

import "errors"

// BusinessError is an expected, user-facing rule violation. Detail
// carries structured context (e.g. the conflicting interval) so the API
// layer can build an actionable message.
type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessDetail(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts a BusinessError regardless of code.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
