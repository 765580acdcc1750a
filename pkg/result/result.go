// Package result carries the outcome of a service operation: either a value
// or an expected business failure. System faults travel as plain errors
// alongside it, never inside it.
package result

import "strings"

type Result[T any] struct {
	IsSuccess    bool     `json:"isSuccess"`
	Data         T        `json:"data,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	Errors       []string `json:"errors,omitempty"`
}

func Success[T any](data T) Result[T] {
	return Result[T]{
		IsSuccess: true,
		Data:      data,
	}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{
		ErrorMessage: message,
		Errors:       []string{message},
	}
}

func FailureList[T any](errs []string) Result[T] {
	return Result[T]{
		ErrorMessage: strings.Join(errs, ", "),
		Errors:       errs,
	}
}
