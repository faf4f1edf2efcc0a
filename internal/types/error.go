package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	NotFound             ErrorCode = "NOT_FOUND"
	// RpcError marks failures of a remote collaborator (GraphQL service, consumer host).
	// Clients render it with a dedicated affordance instead of a generic message.
	RpcError ErrorCode = "RPC_ERROR"
)

func (c ErrorCode) String() string {
	return string(c)
}

// Error is the error type returned across service boundaries.
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.ErrorCode.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

func NewBadRequestError(err error) *Error {
	return NewError(http.StatusBadRequest, BadRequest, err)
}

func NewNotFoundError(err error) *Error {
	return NewError(http.StatusNotFound, NotFound, err)
}

func NewRpcError(err error) *Error {
	return NewError(http.StatusBadGateway, RpcError, err)
}

// IsRpcError reports whether err, or anything it wraps, is an RPC error.
func IsRpcError(err error) bool {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.ErrorCode == RpcError
	}
	return false
}
