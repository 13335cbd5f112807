package usecase

import (
	"fmt"
	"net/http"

	"github.com/fastygo/todoclient/domain"
)

// ErrorFromStatus translates a non-success HTTP status the gateway
// passed through into a domain error. The gateway itself never
// interprets status codes; that responsibility sits in this layer.
func ErrorFromStatus(status int, operation string) error {
	code := domain.ErrCodeInternal
	switch status {
	case http.StatusUnauthorized:
		code = domain.ErrCodeUnauthorized
	case http.StatusForbidden:
		code = domain.ErrCodeForbidden
	case http.StatusNotFound:
		code = domain.ErrCodeNotFound
	case http.StatusConflict:
		code = domain.ErrCodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = domain.ErrCodeInvalid
	}
	return domain.NewError(code, fmt.Sprintf("%s failed with status %d", operation, status))
}
