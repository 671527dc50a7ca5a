package httperr

import "errors"

type Kind int

const (
	KindInvalidArgument Kind = iota
	KindNotFound
	KindPermissionDenied
	KindAlreadyExists
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindAlreadyExists:
		return "already_exists"
	default:
		return "invalid_argument"
	}
}

// BusinessError carries a stable machine-readable code that clients can
// localise, plus the category used to choose the transport status.
type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidArgument, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrPermissionDenied(code string) error {
	return BusinessError{Kind: KindPermissionDenied, Code: code}
}

func ErrAlreadyExists(code string) error {
	return BusinessError{Kind: KindAlreadyExists, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
