package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Message:    "missing or invalid authentication token",
	StatusCode: http.StatusUnauthorized,
}
